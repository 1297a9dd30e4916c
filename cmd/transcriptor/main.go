package main

import "github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd"

// @title Transcriptor API
// @version 1.0
// @description Audio upload and transcription service
// @BasePath /
func main() {
	cmd.Execute()
}
