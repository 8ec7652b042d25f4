package service

import (
	"context"
	"errors"
	"zentravel/config"
	"zentravel/infras/genai"
	"zentravel/infras/otel"
	"zentravel/internal/domains/oracle/model"
	"zentravel/internal/domains/oracle/model/dto"
	"zentravel/internal/domains/oracle/store"
	"zentravel/shared/constant"
	"zentravel/shared/failure"
	"zentravel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const greetingText = "願星辰引導你的道路，冒險者。\n\n我是這趟旅程的預言者，關於這次「**金色奧捷**」的冒險，你想預知些什麼？"

// systemInstruction fixes the oracle persona. It is sent on every call and
// is never part of the stored transcript.
const systemInstruction = `你是一位「古代旅程預言者」。你對這趟 2026 年 2 月前往捷克與奧地利的家庭旅行瞭若指掌。
      旅行目的地包括：布拉格 (Prague)、庫倫洛夫 (CK)、薩爾斯堡 (Salzburg)、哈修塔特 (Hallstatt)、維也納 (Vienna)。
      你的口吻應該帶著一點點神秘、睿智且友好的 RPG 風格（例如稱呼對方為冒險者）。
      你可以回答關於景點歷史、交通建議、捷克/奧地利文化、必吃食物等問題。
      
      重要格式規則：
      1. 請使用換行符號 (\n) 將不同段落或要點隔開，確保閱讀舒適且有條理。
      2. 關鍵字、地名、食物名或重要提醒請務必使用 **加粗語法** (例如：**維也納**、**天文鐘**、**糖漬紫羅蘭**)。
      3. 回答應簡短有力，富有啟發性，不要給出大段未經格式化的文字。`

const (
	fallbackUnavailable = "魔法波動不穩定，傳送感應中斷了。\n\n請稍候片刻，待魔力回填後再向星辰詢問。"
	fallbackEmptyReply  = "預言稍微模糊了，請再次向星辰尋求指引。"
)

type Oracle interface {
	StartSession(ctx context.Context) (dto.StartSessionResponse, error)
	Send(ctx context.Context, sessionID string, req dto.SendRequest) (dto.SendResponse, error)
	GetTranscript(ctx context.Context, sessionID string) (dto.TranscriptResponse, error)
}

type serviceImpl struct {
	store  store.Store
	client genai.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(store store.Store, client genai.Client, cfg *config.Config, otel otel.Otel) Oracle {
	return &serviceImpl{
		store:  store,
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) StartSession(ctx context.Context) (res dto.StartSessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StartSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	greeting := model.Message{
		Role:      model.RoleOracle,
		Text:      greetingText,
		Timestamp: timezone.Now(),
	}

	res.SessionID = s.store.Create(greeting)
	res.Messages = make([]dto.MessageResponse, 1)
	res.Messages[0].FromModel(greeting)

	log.Info().Str("sessionID", res.SessionID).Msg("oracle session started")

	return res, nil
}

// Send appends the question to the transcript, forwards the whole history
// to the model and appends the reply. Upstream failures never fail the
// call: a canned reply takes the model's place, so the transcript always
// grows by exactly two messages.
func (s *serviceImpl) Send(ctx context.Context, sessionID string, req dto.SendRequest) (res dto.SendResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	history, ok := s.store.Get(sessionID)
	if !ok {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	question := model.Message{
		Role:      model.RoleUser,
		Text:      req.Text,
		Timestamp: timezone.Now(),
	}

	contents := make([]genai.Content, 0, len(history)+1)
	for _, message := range append(history, question) {
		contents = append(contents, genai.Content{Role: message.Role, Text: message.Text})
	}

	replyText, err := s.client.GenerateContent(ctx, systemInstruction, contents)
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("oracle upstream failed, using canned reply")
		scope.AddEvent("fallback reply used")

		replyText = fallbackUnavailable
		if errors.Is(err, genai.ErrNoCandidates) {
			replyText = fallbackEmptyReply
		}

		err = nil
	}

	reply := model.Message{
		Role:      model.RoleOracle,
		Text:      replyText,
		Timestamp: timezone.Now(),
	}

	if !s.store.Append(sessionID, question, reply) {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	res.SessionID = sessionID
	res.Reply.FromModel(reply)

	return res, nil
}

func (s *serviceImpl) GetTranscript(ctx context.Context, sessionID string) (res dto.TranscriptResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTranscript")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages, ok := s.store.Get(sessionID)
	if !ok {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	res.FromModels(sessionID, messages)

	return res, nil
}
