package config

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		// changelog/notes: the two files the tool touches. Both resolve
		// relative to the working directory, which for release scripts is
		// the repository root.
		"changelog": "CHANGELOG.md",
		"notes":     "release_description.txt",
		// placeholder: the literal marker in the release description that
		// gets replaced with the extracted section.
		"placeholder": "__CHANGELOG__",
		// heading_prefix: lines beginning with this prefix start a new
		// version section and end the one above it.
		"heading_prefix": "## Version",
		// remote_url: empty means read the changelog from disk.
		"remote_url": "",
		// remote_timeout: seconds to wait for a remote changelog fetch.
		"remote_timeout": 10,
	}
}

// DefaultConfigTemplate returns a fully commented config template that
// documents every available option.
func DefaultConfigTemplate() string {
	return `# relnote configuration
# Project config: .relnote/config.yml (or .relnote/config.json)
# User config:    ~/.config/relnote/config.yml
# Environment:    RELNOTE_* (e.g. RELNOTE_CHANGELOG, RELNOTE_HEADING_PREFIX)

changelog: CHANGELOG.md               # Markdown changelog to extract from
notes: release_description.txt        # Release description rewritten in place
placeholder: __CHANGELOG__            # Token replaced with the extracted section
heading_prefix: "## Version"          # Line prefix that starts a version section
remote_url: ""                        # Fetch changelog from URL instead of disk (extract --remote)
remote_timeout: 10                    # Remote fetch timeout in seconds
`
}
