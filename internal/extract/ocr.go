package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Runner lets us stub the external OCR command in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	return out.Bytes(), errb.Bytes(), err
}

// OCR recognizes text in raster images by shelling out to tesseract.
type OCR struct {
	Cmd    string
	Lang   string
	OEM    int
	PSM    int
	Runner Runner
}

// NewOCR returns an OCR engine with the fixed language and segmentation
// settings used for uploads.
func NewOCR(cmd string) *OCR {
	if cmd == "" {
		cmd = "tesseract"
	}
	return &OCR{
		Cmd:    cmd,
		Lang:   "eng",
		OEM:    1,
		PSM:    3,
		Runner: execRunner{},
	}
}

// Recognize runs tesseract over the payload and returns the recognized text.
// An empty result is not an error; the caller decides whether that is fatal.
func (o *OCR) Recognize(ctx context.Context, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "ocr-*")
	if err != nil {
		return "", fmt.Errorf("ocr temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("ocr temp write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("ocr temp close: %w", err)
	}

	args := []string{
		tmp.Name(), "stdout",
		"-l", o.Lang,
		"--oem", strconv.Itoa(o.OEM),
		"--psm", strconv.Itoa(o.PSM),
	}
	out, errb, err := o.Runner.Run(ctx, o.Cmd, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}
	return string(out), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
