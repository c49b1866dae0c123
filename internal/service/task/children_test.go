package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanujaKob/Task-Management-Application-3/internal/domain"
)

func TestCreateReminderRequiresExistingVisibleTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := domain.CreateReminderRequest{RemindAt: time.Now().Add(time.Hour)}

	_, err := f.svc.CreateReminder(ctx, f.regular, uuid.New(), req)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	foreign, err := f.svc.Create(ctx, f.bystander, domain.CreateTaskRequest{Title: "foreign"})
	require.NoError(t, err)

	_, err = f.svc.CreateReminder(ctx, f.regular, foreign.ID, req)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteReminderParentMismatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	taskA, err := f.svc.Create(ctx, f.regular, domain.CreateTaskRequest{Title: "a"})
	require.NoError(t, err)
	taskB, err := f.svc.Create(ctx, f.regular, domain.CreateTaskRequest{Title: "b"})
	require.NoError(t, err)

	reminder, err := f.svc.CreateReminder(ctx, f.regular, taskA.ID, domain.CreateReminderRequest{RemindAt: time.Now()})
	require.NoError(t, err)

	// Reminder exists, but under a different task.
	err = f.svc.DeleteReminder(ctx, f.regular, taskB.ID, reminder.ID)
	assert.ErrorIs(t, err, domain.ErrReminderNotFound)

	require.NoError(t, f.svc.DeleteReminder(ctx, f.regular, taskA.ID, reminder.ID))
}

func TestListRemindersSortedByRemindAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	parent, err := f.svc.Create(ctx, f.regular, domain.CreateTaskRequest{Title: "p"})
	require.NoError(t, err)

	later := time.Now().Add(2 * time.Hour)
	sooner := time.Now().Add(time.Hour)
	_, err = f.svc.CreateReminder(ctx, f.regular, parent.ID, domain.CreateReminderRequest{RemindAt: later})
	require.NoError(t, err)
	_, err = f.svc.CreateReminder(ctx, f.regular, parent.ID, domain.CreateReminderRequest{RemindAt: sooner})
	require.NoError(t, err)

	reminders, err := f.svc.ListReminders(ctx, f.regular, parent.ID)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.True(t, reminders[0].RemindAt.Before(reminders[1].RemindAt))
}

func TestDeleteCommentAuthorOrGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assignee := f.bystander.ID
	parent, err := f.svc.Create(ctx, f.regular, domain.CreateTaskRequest{Title: "discussed", AssigneeID: &assignee})
	require.NoError(t, err)

	comment, err := f.svc.CreateComment(ctx, f.bystander, parent.ID, domain.CreateCommentRequest{Body: "hi"})
	require.NoError(t, err)

	// The task creator is not the comment author and passes the guard.
	require.NoError(t, f.svc.DeleteComment(ctx, f.regular, parent.ID, comment.ID))

	comment, err = f.svc.CreateComment(ctx, f.regular, parent.ID, domain.CreateCommentRequest{Body: "mine"})
	require.NoError(t, err)

	// The assignee is neither author nor owner: denied.
	err = f.svc.DeleteComment(ctx, f.bystander, parent.ID, comment.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// The author may always remove their own comment.
	own, err := f.svc.CreateComment(ctx, f.bystander, parent.ID, domain.CreateCommentRequest{Body: "own"})
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteComment(ctx, f.bystander, parent.ID, own.ID))
}

func TestAttachmentLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	parent, err := f.svc.Create(ctx, f.regular, domain.CreateTaskRequest{Title: "docs"})
	require.NoError(t, err)

	attachment, err := f.svc.CreateAttachment(ctx, f.regular, parent.ID, domain.CreateAttachmentRequest{
		FileName:    "spec.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
	})
	require.NoError(t, err)
	assert.Equal(t, f.regular.ID, attachment.UploadedBy)

	attachments, err := f.svc.ListAttachments(ctx, f.regular, parent.ID)
	require.NoError(t, err)
	require.Len(t, attachments, 1)

	err = f.svc.DeleteAttachment(ctx, f.regular, uuid.New(), attachment.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	require.NoError(t, f.svc.DeleteAttachment(ctx, f.regular, parent.ID, attachment.ID))

	attachments, err = f.svc.ListAttachments(ctx, f.regular, parent.ID)
	require.NoError(t, err)
	assert.Empty(t, attachments)
}
