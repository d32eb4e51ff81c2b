package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	// Owner: read and write;
	// Group: read;
	// Others: read.
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	// Owner: read, write, and execute;
	// Group: read and execute;
	// Others: read and execute.
	DefaultFolderPermissions os.FileMode = 0o755

	// CredentialFilePermissions is used for files holding session cookies: (rw-------).
	CredentialFilePermissions os.FileMode = 0o600
)

// Output format names accepted by the "output_format" setting.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)
