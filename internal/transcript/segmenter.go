package transcript

import (
	"regexp"
	"strings"
)

// Interrogative openers that mark an interviewer turn as a question even
// without a trailing question mark.
var questionOpenerRe = regexp.MustCompile(`(?i)^(what|how|why|can you|could you|tell me|describe|explain)`)

// ExtractPairs scans the transcript in order and pairs each interviewer
// question with the immediately following candidate turn. There is no
// lookahead beyond one turn: a question followed by anything other than a
// candidate turn gets an empty answer.
func ExtractPairs(turns []Turn) []QuestionAnswerPair {
	var pairs []QuestionAnswerPair

	for i, turn := range turns {
		if turn.Role != RoleInterviewer {
			continue
		}

		text := strings.TrimSpace(turn.Content)
		if !isQuestion(text) {
			continue
		}

		pair := QuestionAnswerPair{Question: text}
		if i+1 < len(turns) && turns[i+1].Role == RoleCandidate {
			pair.Answer = strings.TrimSpace(turns[i+1].Content)
		}

		pairs = append(pairs, pair)
	}

	return pairs
}

func isQuestion(text string) bool {
	return strings.HasSuffix(text, "?") || questionOpenerRe.MatchString(text)
}
