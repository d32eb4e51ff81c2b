// Package cookiefile reads and writes cookie files in the Netscape format
// used by curl, wget and browser cookie exporters.
package cookiefile
