package whisper_cpp

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"tiktok-transcript/internal/app/util/files"
)

// LocalTranscriber implements local transcription, using local binary commands.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(binaryPath, modelPath string) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
	}
}

// Transcript runs the whisper.cpp binary on the given audio file and returns
// the transcribed text.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	if lt.binaryPath == "" || lt.modelPath == "" {
		return "", fmt.Errorf("whisper.cpp binary or model not configured")
	}

	log.Printf("starting transcription of file %s\n", inputFilePath)

	// whisper.cpp writes "<output>.txt" next to the given output prefix.
	outputPrefix := filepath.Join(os.TempDir(), strings.TrimSuffix(filepath.Base(inputFilePath), filepath.Ext(inputFilePath)))

	args := []string{
		"-m", lt.modelPath,
		"-otxt",
		"-f", inputFilePath,
		"-of", outputPrefix,
	}

	command := exec.Command(lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	log.Printf("running transcription command: %s %s\n", lt.binaryPath, strings.Join(args, " "))

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String())
	}

	output, err := files.ReadOutputFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("failed to read output file: %v", err)
	}

	return output, nil
}
