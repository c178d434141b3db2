package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Found %d frame files in %s":           "%s 内に %d 個のフレームファイルが見つかりました",
		"Scanning %d frames for global range":  "%d フレームのグローバルレンジをスキャン中",
		"Global range: min=%g max=%g":          "グローバルレンジ: 最小=%g 最大=%g",
		"Streaming %d frames at %.1f fps":      "%d フレームを %.1f fps でストリーミング中",
		"Canonical geometry: %s":               "基準ジオメトリ: %s",
		"Encoded %d frames (%d bytes) to %s":   "%d フレーム (%d バイト) を %s にエンコードしました",
		"Interrupted, shutting down...":        "中断されました。シャットダウン中...",

		// Scan stage
		"Scanned %s: %d samples":               "%s をスキャンしました: %d サンプル",
		"Range scan completed over %d samples": "%d サンプルのレンジスキャンが完了しました",

		// Stream stage
		"Wrote frame %d/%d (%d bytes)":         "フレーム %d/%d (%d バイト) を書き込みました",
		"Encoder finished":                     "エンコーダが終了しました",

		// Encoder adapter
		"Running encoder command: %s":          "エンコーダコマンドを実行: %s",

		// Errors
		"Failed to scan range: %s":             "レンジのスキャンに失敗しました: %s",
		"Failed to stream frames: %s":          "フレームのストリーミングに失敗しました: %s",
		"Failed to start encoder: %s":          "エンコーダの起動に失敗しました: %s",
	})
}
