package scaffold

import "embed"

// scaffoldFS holds the project template set. Files ending in .tmpl are
// rendered with text/template; the suffix is stripped for the output name.
//
//go:embed scaffolds
var scaffoldFS embed.FS
