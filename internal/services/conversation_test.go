package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveConversationID_SymmetricAcrossParticipants(t *testing.T) {
	forward := DeriveConversationID("user-b", "user-a", nil)
	backward := DeriveConversationID("user-a", "user-b", nil)

	assert.Equal(t, forward, backward)
	assert.Equal(t, "user-a_user-b", forward)
}

func TestDeriveConversationID_JobScopedThreadsAreDistinct(t *testing.T) {
	jobOne := "job-1"
	jobTwo := "job-2"

	withJobOne := DeriveConversationID("user-a", "user-b", &jobOne)
	withJobTwo := DeriveConversationID("user-a", "user-b", &jobTwo)
	withoutJob := DeriveConversationID("user-a", "user-b", nil)

	assert.Equal(t, "user-a_user-b_job_job-1", withJobOne)
	assert.NotEqual(t, withJobOne, withJobTwo)
	assert.NotEqual(t, withJobOne, withoutJob)
}

func TestDeriveConversationID_EmptyJobIDBehavesLikeNil(t *testing.T) {
	empty := ""
	assert.Equal(t,
		DeriveConversationID("user-a", "user-b", nil),
		DeriveConversationID("user-a", "user-b", &empty),
	)
}
