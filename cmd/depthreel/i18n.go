// Package main provides localization for the depthreel CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Encode float32 EXR frame sequences into a lossless FFV1 video.": "float32のEXRフレームシーケンスをロスレスFFV1動画にエンコードします。",

		// Diagnostics
		"%s is not a directory": "%s はディレクトリではありません",
		"Output saved to %s":    "出力を %s に保存しました",
	})
}
