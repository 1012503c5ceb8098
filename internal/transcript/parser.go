package transcript

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// Parser extracts interview turns from uploaded transcript documents.
// Supported formats are the ones docconv can read plus plain text.
type Parser struct {
	uploadsDir string
}

// ParsedTranscript is the result of parsing one uploaded document.
type ParsedTranscript struct {
	Filename string
	FileType string
	FileSize int64
	FullText string
	Turns    []Turn
}

func NewParser(uploadsDir string) *Parser {
	return &Parser{uploadsDir: uploadsDir}
}

// ParseFile saves the upload, extracts its text, and splits it into
// speaker turns.
func (p *Parser) ParseFile(filename string, reader io.Reader) (*ParsedTranscript, error) {
	filePath := filepath.Join(p.uploadsDir, filename)
	if err := os.MkdirAll(p.uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	size, err := io.Copy(file, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	fileType := strings.ToLower(filepath.Ext(filename))
	var text string

	switch fileType {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		text = res.Body
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read text file: %w", err)
		}
		text = string(content)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}

	return &ParsedTranscript{
		Filename: filename,
		FileType: fileType,
		FileSize: size,
		FullText: text,
		Turns:    ParseTurns(text),
	}, nil
}

// ParseTurns splits raw transcript text into turns. Lines are expected in
// "Interviewer: ..." / "Candidate: ..." form; continuation lines without a
// speaker prefix extend the current turn.
func ParseTurns(text string) []Turn {
	var turns []Turn

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		role, content, ok := splitSpeakerLine(line)
		if !ok {
			// Continuation of the previous speaker's turn.
			if len(turns) > 0 {
				turns[len(turns)-1].Content += " " + line
			}
			continue
		}

		turns = append(turns, Turn{Role: role, Content: content})
	}

	return turns
}

func splitSpeakerLine(line string) (role, content string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}

	switch strings.ToLower(strings.TrimSpace(line[:idx])) {
	case "interviewer", "assistant", "ai":
		role = RoleInterviewer
	case "candidate", "user", "you":
		role = RoleCandidate
	case "system":
		role = RoleSystem
	default:
		return "", "", false
	}

	return role, strings.TrimSpace(line[idx+1:]), true
}
