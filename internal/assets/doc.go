// Package assets provides the slide template sets a deck is rendered with.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in sets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the set is not
// found there, so a custom directory only needs the sets it overrides.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}/
//	        ├── layouts.yaml   # slide size and named layouts
//	        ├── style.css      # optional deck stylesheet
//	        └── ...            # images referenced by layouts
//
// A layouts.yaml manifest looks like:
//
//	slide:
//	  width: 13.333
//	  height: 7.5
//	layouts:
//	  - name: Song Lyrics
//	    placeholders: [10, 11]
//	    html: |
//	      <p class="top">{{.Ph 10}}</p>
//	      <p class="bottom">{{.Ph 11}}</p>
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
