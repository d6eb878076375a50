// Package configs manages the Cloud Safe user configuration.
//
// Configuration is stored in TOML at <UserConfigDir>/cloudsafe/config.toml.
// A missing file, or a missing key, falls back to the defaults below.
//
//	[presentation]
//	theme = "dark"              # light or dark
//
//	[simulation]
//	upload_delay_ms = 2000      # narrative pause while "uploading"
//	encrypt_delay_ms = 2500     # narrative pause while "encrypting"
//	decrypt_delay_ms = 2500     # narrative pause while "decrypting"
//	output_dir = ""             # where the restored file is saved
//	fallback_name = "decrypted-file"
//
// # Settings
//
// UserCloudSafeSettings is initialized at startup with the resolved config
// directory and the default download directory. Tests replace it with
// temporary paths.
package configs
