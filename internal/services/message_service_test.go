package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theEndless11/news/internal/models"
	"github.com/theEndless11/news/pkg/apperr"
)

type fakeMessageStore struct {
	messages []models.Message
	now      time.Time
}

func (f *fakeMessageStore) CreateMessage(_ context.Context, msg *models.Message) (*models.Message, error) {
	if msg.Time.IsZero() {
		f.now = f.now.Add(time.Millisecond)
		msg.Time = f.now
	}
	f.messages = append(f.messages, *msg)
	return msg, nil
}

func (f *fakeMessageStore) GetMessages(_ context.Context, username string) ([]models.Message, error) {
	visible := make([]models.Message, 0)
	for _, msg := range f.messages {
		if username == "" || !msg.IsPrivate || msg.ToUser == username {
			visible = append(visible, msg)
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].Time.Before(visible[j].Time) })
	return visible, nil
}

func TestParseIsPrivate(t *testing.T) {
	cases := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{"", false, false},
		{"true", true, false},
		{"false", false, false},
		{"1", true, false},
		{"0", false, false},
		{"True", true, false},
		{"yes", false, true},
		{"private", false, true},
	}

	for _, tc := range cases {
		got, err := ParseIsPrivate(tc.raw)
		if tc.wantErr {
			require.Error(t, err, "raw=%q", tc.raw)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			continue
		}
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestSendMessageRequiresUser(t *testing.T) {
	service := NewMessageService(&fakeMessageStore{})

	_, err := service.SendMessage(context.Background(), SendMessageInput{Text: "hi"})

	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSendMessageLiteralFalseStaysPublic(t *testing.T) {
	store := &fakeMessageStore{}
	service := NewMessageService(store)

	msg, err := service.SendMessage(context.Background(), SendMessageInput{
		User:      "alice",
		Text:      "hello everyone",
		IsPrivate: "false",
	})

	require.NoError(t, err)
	assert.False(t, msg.IsPrivate)
	require.Len(t, store.messages, 1)
	assert.False(t, store.messages[0].IsPrivate)
}

func TestSendMessageRejectsUnparsableIsPrivate(t *testing.T) {
	store := &fakeMessageStore{}
	service := NewMessageService(store)

	_, err := service.SendMessage(context.Background(), SendMessageInput{
		User:      "alice",
		IsPrivate: "maybe",
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Empty(t, store.messages)
}

func TestSendMessageStoresAttachmentPath(t *testing.T) {
	store := &fakeMessageStore{}
	service := NewMessageService(store)

	msg, err := service.SendMessage(context.Background(), SendMessageInput{
		User: "alice",
		File: "/uploads/1700000000000-photo.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/1700000000000-photo.png", msg.File)
	assert.False(t, msg.Time.IsZero())
}

func TestGetMessagesVisibility(t *testing.T) {
	store := &fakeMessageStore{}
	service := NewMessageService(store)
	ctx := context.Background()

	_, err := service.SendMessage(ctx, SendMessageInput{User: "alice", Text: "public one"})
	require.NoError(t, err)
	_, err = service.SendMessage(ctx, SendMessageInput{User: "alice", Text: "for bob", IsPrivate: "true", ToUser: "bob"})
	require.NoError(t, err)
	_, err = service.SendMessage(ctx, SendMessageInput{User: "carol", Text: "public two"})
	require.NoError(t, err)

	bobFeed, err := service.GetMessages(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobFeed, 3)

	aliceFeed, err := service.GetMessages(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceFeed, 2)
	for _, msg := range aliceFeed {
		assert.False(t, msg.IsPrivate)
	}

	all, err := service.GetMessages(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.True(t, !all[i].Time.Before(all[i-1].Time), "feed must be sorted ascending by time")
	}
}
