package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"procure-ai-be/internal/constant"
	"procure-ai-be/internal/dto"
	"procure-ai-be/internal/entity"
	"procure-ai-be/internal/mapper"
	"procure-ai-be/internal/pkg/logger"
	"procure-ai-be/internal/repository/memory"
	"procure-ai-be/internal/repository/specification"
	"procure-ai-be/internal/repository/unitofwork"
	"procure-ai-be/pkg/procurement/conversation"
	"procure-ai-be/pkg/procurement/supplier"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IChatService interface {
	CreateSession(ctx context.Context, userID uuid.UUID) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userID uuid.UUID) ([]dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userID, sessionID uuid.UUID) ([]dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, userID uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	RenameSession(ctx context.Context, userID, sessionID uuid.UUID, title string) error
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error
}

type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	machine      *conversation.Machine
	states       *memory.StateRepository
	vendorMapper *mapper.VendorMapper
	publisher    message.Publisher
	topicName    string
	log          logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	machine *conversation.Machine,
	states *memory.StateRepository,
	publisher message.Publisher,
	topicName string,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:   uowFactory,
		machine:      machine,
		states:       states,
		vendorMapper: mapper.NewVendorMapper(),
		publisher:    publisher,
		topicName:    topicName,
		log:          log,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userID uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	state := conversation.NewState()
	snapshot, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userID,
		Title:     constant.SessionDefaultTitle,
		State:     snapshot,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	s.states.Save(session.Id.String(), state)
	return &dto.CreateSessionResponse{Id: session.Id, Title: session.Title}, nil
}

func (s *chatService) GetAllSessions(ctx context.Context, userID uuid.UUID) ([]dto.GetAllSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.GetAllSessionsResponse, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, dto.GetAllSessionsResponse{
			Id:        sess.Id,
			Title:     sess.Title,
			CreatedAt: sess.CreatedAt,
			UpdatedAt: sess.UpdatedAt,
		})
	}
	return out, nil
}

func (s *chatService) GetChatHistory(ctx context.Context, userID, sessionID uuid.UUID) ([]dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, userID, sessionID)
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.GetChatHistoryResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, dto.GetChatHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Chat:      msg.Chat,
			Suppliers: msg.Suppliers,
			CreatedAt: msg.CreatedAt,
		})
	}
	return out, nil
}

func (s *chatService) SendChat(ctx context.Context, userID uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if strings.TrimSpace(req.Chat) == "" {
		return nil, errors.New("message cannot be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var session *entity.ChatSession
	var err error
	if req.ChatSessionId == uuid.Nil {
		created, err := s.CreateSession(ctx, userID)
		if err != nil {
			return nil, err
		}
		session, err = s.ownedSession(ctx, uow, userID, created.Id)
		if err != nil {
			return nil, err
		}
	} else {
		session, err = s.ownedSession(ctx, uow, userID, req.ChatSessionId)
		if err != nil {
			return nil, err
		}
	}

	state := s.loadState(session)
	catalog, err := s.loadCatalog(ctx, uow)
	if err != nil {
		s.log.Error("chat", "failed to load vendor catalog", map[string]interface{}{"error": err.Error()})
		catalog = nil
	}

	next, reply, effects := s.machine.Advance(ctx, state, req.Chat, catalog)

	snapshot, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	userMsg := &entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          req.Chat,
		Role:          constant.ChatMessageRoleUser,
		ChatSessionId: session.Id,
		CreatedAt:     now,
	}
	replyMsg := &entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          reply.Text,
		Role:          constant.ChatMessageRoleAssistant,
		Suppliers:     reply.Vendors,
		ChatSessionId: session.Id,
		CreatedAt:     now,
	}

	if session.Title == constant.SessionDefaultTitle {
		session.Title = deriveTitle(req.Chat)
	}
	session.State = snapshot

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, replyMsg); err != nil {
		return nil, err
	}
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.states.Save(session.Id.String(), next)
	s.dispatchEffects(userID, session.Id, effects)

	return &dto.SendChatResponse{
		ChatSessionId:    session.Id,
		ChatSessionTitle: session.Title,
		Stage:            string(next.Stage),
		Sent: &dto.SendChatResponseChat{
			Id:        userMsg.Id,
			Chat:      userMsg.Chat,
			Role:      userMsg.Role,
			CreatedAt: userMsg.CreatedAt,
		},
		Reply: &dto.SendChatResponseChat{
			Id:        replyMsg.Id,
			Chat:      replyMsg.Chat,
			Role:      replyMsg.Role,
			Suppliers: replyMsg.Suppliers,
			CreatedAt: replyMsg.CreatedAt,
		},
	}, nil
}

func (s *chatService) RenameSession(ctx context.Context, userID, sessionID uuid.UUID, title string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, userID, sessionID)
	if err != nil {
		return err
	}

	session.Title = strings.TrimSpace(title)
	if session.Title == "" {
		return errors.New("title cannot be empty")
	}
	return uow.ChatSessionRepository().Update(ctx, session)
}

func (s *chatService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, userID, sessionID)
	if err != nil {
		return err
	}

	if err := uow.ChatSessionRepository().Delete(ctx, session.Id); err != nil {
		return err
	}
	s.states.Delete(session.Id.String())
	return nil
}

// ownedSession loads the session and enforces user ownership.
func (s *chatService) ownedSession(ctx context.Context, uow unitofwork.UnitOfWork, userID, sessionID uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionID},
		specification.UserOwnedBy{UserID: userID},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("chat session not found")
	}
	return session, nil
}

func (s *chatService) loadState(session *entity.ChatSession) conversation.State {
	if state, ok := s.states.Get(session.Id.String()); ok {
		return state
	}

	var state conversation.State
	if len(session.State) > 0 {
		if err := json.Unmarshal(session.State, &state); err == nil && state.Stage != "" {
			return state
		}
	}
	return conversation.NewState()
}

func (s *chatService) loadCatalog(ctx context.Context, uow unitofwork.UnitOfWork) ([]supplier.Vendor, error) {
	vendors, err := uow.VendorRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make([]supplier.Vendor, 0, len(vendors))
	for _, v := range vendors {
		catalog = append(catalog, s.vendorMapper.ToMatchable(v))
	}
	return catalog, nil
}

func (s *chatService) dispatchEffects(userID, sessionID uuid.UUID, effects []conversation.Effect) {
	for _, effect := range effects {
		switch effect.Type {
		case conversation.EffectPlanCompleted:
			if effect.Plan == nil || s.publisher == nil {
				continue
			}
			payload, err := json.Marshal(dto.PlanCompletedMessage{
				UserId:        userID,
				ChatSessionId: sessionID,
				Plan:          *effect.Plan,
			})
			if err != nil {
				s.log.Error("chat", "failed to marshal plan payload", map[string]interface{}{"error": err.Error()})
				continue
			}
			msg := message.NewMessage(uuid.NewString(), payload)
			if err := s.publisher.Publish(s.topicName, msg); err != nil {
				s.log.Error("chat", "failed to publish plan completed", map[string]interface{}{"error": err.Error()})
			}
		case conversation.EffectSessionReset:
			s.log.Info("chat", "conversation reset", map[string]interface{}{"session_id": sessionID.String()})
		}
	}
}

func deriveTitle(firstMessage string) string {
	title := strings.TrimSpace(firstMessage)
	if title == "" {
		return constant.SessionDefaultTitle
	}
	// Truncate on runes so multi-byte characters are never cut mid-sequence.
	if runes := []rune(title); len(runes) > constant.SessionTitleMaxLength {
		title = strings.TrimSpace(string(runes[:constant.SessionTitleMaxLength])) + "..."
	}
	return title
}
