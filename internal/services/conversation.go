package services

import "fmt"

// DeriveConversationID builds the deterministic grouping key for a
// two-party thread: the participant ids sorted ascending, joined with "_",
// with an optional job scope appended. Sending A→B and B→A about the same
// job therefore lands in the same thread, while two different jobs between
// the same pair get two different threads.
//
// Callers may override the derived id by supplying an explicit
// conversationId on send; that value is trusted as-is and never validated
// against the participant pair. See DESIGN.md for the trust-boundary note.
func DeriveConversationID(senderID, receiverID string, jobID *string) string {
	first, second := senderID, receiverID
	if second < first {
		first, second = second, first
	}

	conversationID := fmt.Sprintf("%s_%s", first, second)
	if jobID != nil && *jobID != "" {
		conversationID += fmt.Sprintf("_job_%s", *jobID)
	}
	return conversationID
}
