package service_test

import (
	"context"
	"errors"
	"testing"
	"zentravel/config"
	"zentravel/infras/genai"
	genaiMocks "zentravel/infras/genai/mocks"
	otelMocks "zentravel/infras/otel/mocks"
	"zentravel/internal/domains/oracle/model"
	"zentravel/internal/domains/oracle/model/dto"
	"zentravel/internal/domains/oracle/service"
	"zentravel/internal/domains/oracle/store"
	"zentravel/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var errUpstream = errors.New("connection reset")

func newService(t *testing.T) (service.Oracle, *genaiMocks.MockClient, store.Store) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := genaiMocks.NewMockClient(ctrl)
	sessions := store.New()

	svc := service.New(sessions, client, &config.Config{}, otelMocks.NewOtel())

	return svc, client, sessions
}

func TestStartSession(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)

	res, err := svc.StartSession(context.Background())

	assert.NoError(t, err)
	assert.NotEmpty(t, res.SessionID)
	assert.Len(t, res.Messages, 1)

	greeting := res.Messages[0]
	assert.Equal(t, model.RoleOracle, greeting.Role)
	assert.Contains(t, greeting.Text, "願星辰引導你的道路，冒險者。")

	var boldRuns []string
	for _, segment := range greeting.Segments {
		if segment.Bold {
			boldRuns = append(boldRuns, segment.Text)
		}
	}

	assert.Equal(t, []string{"金色奧捷"}, boldRuns)
}

func TestSend(t *testing.T) {
	t.Parallel()

	t.Run("forwards the whole history and appends the reply", func(t *testing.T) {
		t.Parallel()

		svc, client, sessions := newService(t)

		start, _ := svc.StartSession(context.Background())

		client.EXPECT().
			GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, instruction string, history []genai.Content) (string, error) {
				assert.Contains(t, instruction, "古代旅程預言者")
				assert.Len(t, history, 2)
				assert.Equal(t, genai.RoleModel, history[0].Role)
				assert.Equal(t, genai.RoleUser, history[1].Role)
				assert.Equal(t, "城堡何時開門？", history[1].Text)

				return "**布拉格城堡**在九時開啟大門，冒險者。", nil
			})

		res, err := svc.Send(context.Background(), start.SessionID, dto.SendRequest{Text: "城堡何時開門？"})

		assert.NoError(t, err)
		assert.Equal(t, model.RoleOracle, res.Reply.Role)
		assert.True(t, res.Reply.Segments[0].Bold)

		transcript, _ := sessions.Get(start.SessionID)
		assert.Len(t, transcript, 3)
	})

	t.Run("upstream failure yields the canned apology", func(t *testing.T) {
		t.Parallel()

		svc, client, sessions := newService(t)

		start, _ := svc.StartSession(context.Background())

		client.EXPECT().
			GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errUpstream)

		res, err := svc.Send(context.Background(), start.SessionID, dto.SendRequest{Text: "你好"})

		assert.NoError(t, err)
		assert.Contains(t, res.Reply.Text, "魔法波動不穩定")

		// The transcript still grows by exactly two messages.
		transcript, _ := sessions.Get(start.SessionID)
		assert.Len(t, transcript, 3)
		assert.Equal(t, model.RoleUser, transcript[1].Role)
	})

	t.Run("empty reply yields the blurred prophecy", func(t *testing.T) {
		t.Parallel()

		svc, client, _ := newService(t)

		start, _ := svc.StartSession(context.Background())

		client.EXPECT().
			GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", genai.ErrNoCandidates)

		res, err := svc.Send(context.Background(), start.SessionID, dto.SendRequest{Text: "你好"})

		assert.NoError(t, err)
		assert.Equal(t, "預言稍微模糊了，請再次向星辰尋求指引。", res.Reply.Text)
	})

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newService(t)

		_, err := svc.Send(context.Background(), "missing", dto.SendRequest{Text: "你好"})

		var f *failure.Failure
		assert.ErrorAs(t, err, &f)
		assert.Equal(t, 404, f.Code)
	})
}

func TestGetTranscript(t *testing.T) {
	t.Parallel()

	svc, client, _ := newService(t)

	start, _ := svc.StartSession(context.Background())

	client.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("答案", nil)

	_, err := svc.Send(context.Background(), start.SessionID, dto.SendRequest{Text: "問題"})
	assert.NoError(t, err)

	res, err := svc.GetTranscript(context.Background(), start.SessionID)

	assert.NoError(t, err)
	assert.Equal(t, start.SessionID, res.SessionID)
	assert.Len(t, res.Messages, 3)

	_, err = svc.GetTranscript(context.Background(), "missing")
	assert.Error(t, err)
}
