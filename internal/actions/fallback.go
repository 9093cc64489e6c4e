package actions

import (
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/meeting"
)

// The pattern tier is pure lexical matching over transcript segments: given
// the same transcript it always produces the same item sequence, with no
// model involved. It is the only extraction path that works offline.

const dayNames = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
const monthNames = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

// actionVerbRe matches commitment verb phrases that indicate an action item.
var actionVerbRe = regexp.MustCompile(`(?i)\b(?:commit(?:s|ted)?(?:\s+to)?|deliver|prepare|review|send|follow(?:\s|-)?up|schedule|draft|finish|complete|investigate|confirm|share|organize|arrange|update|set\s+up|book|email|call|create)\b`)

// firstPersonRe matches first-person commitment phrasing, which attaches
// the segment's speaker label as the item owner.
var firstPersonRe = regexp.MustCompile(`(?i)\bi['’]ll\b|\bi\s+will\b|\bgoing\s+to\b`)

// deadlineRe matches deadline-indicating phrases. Group 1 captures the
// phrase after "by"/"before"/"due"; group 2 captures standalone relative
// phrases and day names. The first match in segment text order wins.
var deadlineRe = regexp.MustCompile(`(?i)\b(?:by|before|due(?:\s+on)?)\s+((?:` + dayNames + `)|tomorrow|end\s+of\s+(?:day|week|month)|next\s+(?:week|month)|(?:` + monthNames + `)\.?\s+\d{1,2}(?:st|nd|rd|th)?|\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?)|\b((?:` + dayNames + `)|tomorrow|end\s+of\s+(?:day|week|month)|next\s+(?:week|month))\b`)

// ExtractPattern scans transcript segments for commitments. Each segment
// containing at least one action verb phrase yields one item: the task is
// the verb phrase plus its object clause with any deadline phrase stripped,
// the owner is the speaker label when the utterance is a first-person
// commitment or leads with the verb, and the deadline is the first matched
// date/time phrase. Items preserve segment order and are deduplicated on
// case/whitespace-folded (task, owner), keeping the earliest deadline
// mentioned.
func ExtractPattern(transcript meeting.Transcript) []meeting.ActionItem {
	var items []meeting.ActionItem

	for _, seg := range transcript.Segments {
		speaker, utterance := meeting.ParseSpeaker(seg.Text)
		if speaker == "" {
			speaker = seg.Speaker
		}

		loc := actionVerbRe.FindStringIndex(utterance)
		if loc == nil {
			continue
		}

		task := stripDeadline(utterance[loc[0]:])
		if task == "" {
			continue
		}

		owner := meeting.OwnerUnassigned
		if speaker != "" && (firstPersonRe.MatchString(utterance) || loc[0] == 0) {
			owner = speaker
		}

		deadline := firstDeadline(utterance)

		items = append(items, meeting.ActionItem{
			Task:     task,
			Owner:    owner,
			Deadline: deadline,
		})
	}

	return dedupe(items)
}

// stripDeadline removes deadline phrases from a task clause and trims
// whitespace and trailing punctuation.
func stripDeadline(clause string) string {
	clause = deadlineRe.ReplaceAllString(clause, "")
	clause = strings.Join(strings.Fields(clause), " ")
	return strings.Trim(clause, " .,:;!?-")
}

// firstDeadline returns the first deadline phrase in the utterance, or the
// Unspecified default.
func firstDeadline(utterance string) string {
	m := deadlineRe.FindStringSubmatch(utterance)
	if m == nil {
		return meeting.DeadlineUnspecified
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

// dedupe collapses items with identical case/whitespace-folded (task,
// owner), keeping the earliest item and its first concrete deadline.
func dedupe(items []meeting.ActionItem) []meeting.ActionItem {
	seen := make(map[string]int)
	var out []meeting.ActionItem

	for _, it := range items {
		key := foldKey(it.Task) + "\x00" + foldKey(it.Owner)
		if idx, ok := seen[key]; ok {
			if out[idx].Deadline == meeting.DeadlineUnspecified && it.Deadline != meeting.DeadlineUnspecified {
				out[idx].Deadline = it.Deadline
			}
			continue
		}
		seen[key] = len(out)
		out = append(out, it)
	}

	return out
}

func foldKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
