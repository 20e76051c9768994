package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"ai-strategy-agent-be/internal/constant"
	"ai-strategy-agent-be/internal/dto"
	"ai-strategy-agent-be/internal/entity"
	"ai-strategy-agent-be/internal/pkg/logger"
	"ai-strategy-agent-be/internal/repository/memory"
	"ai-strategy-agent-be/internal/repository/specification"
	"ai-strategy-agent-be/internal/repository/unitofwork"
	ws "ai-strategy-agent-be/internal/websocket"
	"ai-strategy-agent-be/pkg/agent/catalog"
	"ai-strategy-agent-be/pkg/agent/executor"
	"ai-strategy-agent-be/pkg/agent/navigator"
	"ai-strategy-agent-be/pkg/agent/oracle"
	"ai-strategy-agent-be/pkg/agent/persist"
	"ai-strategy-agent-be/pkg/agent/state"
	"ai-strategy-agent-be/pkg/agent/turn"
	"ai-strategy-agent-be/pkg/agents"
	"ai-strategy-agent-be/pkg/dentapp"
	"ai-strategy-agent-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IAgentService defines the guided interview service interface
type IAgentService interface {
	CreateSession(ctx context.Context, agentKey string, userId uuid.UUID, remoteUserId int64, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, agentKey string, userId uuid.UUID, limit, offset int) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, limit, offset int) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, agentKey string, userId uuid.UUID, remoteUserId int64, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
	GetSectionsStatus(ctx context.Context, agentKey string, userId uuid.UUID, remoteUserId int64) (*dto.SectionsStatusResponse, error)
	Export(ctx context.Context, agentKey string, remoteUserId int64) (*dto.ExportResponse, error)
}

// agentRuntime wires the interview engine for one agent.
type agentRuntime struct {
	definition agents.Definition
	gateway    persist.Gateway
	executor   *executor.Executor
}

type agentService struct {
	uowFactory  unitofwork.RepositoryFactory
	convRepo    *memory.ConversationRepository
	redisClient *redis.Client
	hub         *ws.Hub
	publisher   IPublisherService
	runtimes    map[string]*agentRuntime
	logger      logger.ILogger
}

const turnLockTTL = 2 * time.Minute

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// normalizePage clamps client-supplied paging values. Transcripts and session
// lists grow without bound, so list queries always carry a limit.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func NewAgentService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	dentClient *dentapp.Client,
	convRepo *memory.ConversationRepository,
	redisClient *redis.Client,
	hub *ws.Hub,
	publisher IPublisherService,
	appLogger logger.ILogger,
) IAgentService {
	llmLogger := initLLMLogger()

	runtimes := make(map[string]*agentRuntime)
	for _, key := range agents.Keys() {
		def, _ := agents.Lookup(key)
		zlog := appLogger.Raw()

		gateway := dentapp.NewGateway(dentClient, def.Catalog, def.AgentID, zlog)
		orc := oracle.NewLLMOracle(llmProvider, llmLogger)
		processor := turn.NewProcessor(def.Catalog, def.PassScore, zlog)
		nav := navigator.New(def.Catalog, gateway, zlog)

		runtimes[key] = &agentRuntime{
			definition: def,
			gateway:    gateway,
			executor:   executor.New(def.Catalog, def.Prompts, orc, processor, nav, gateway, zlog),
		}
	}

	return &agentService{
		uowFactory:  uowFactory,
		convRepo:    convRepo,
		redisClient: redisClient,
		hub:         hub,
		publisher:   publisher,
		runtimes:    runtimes,
		logger:      appLogger,
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_oracle.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-ORACLE] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

func (s *agentService) runtime(agentKey string) (*agentRuntime, error) {
	rt, ok := s.runtimes[agentKey]
	if !ok {
		return nil, fmt.Errorf("unknown agent: %s", agentKey)
	}
	return rt, nil
}

// CreateSession opens a new interview thread and runs the opening tick so the
// response already carries the first question.
func (s *agentService) CreateSession(ctx context.Context, agentKey string, userId uuid.UUID, remoteUserId int64, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	rt, err := s.runtime(agentKey)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := request.Title
	if title == "" {
		title = "Unnamed session"
	}

	chatSession := entity.ChatSession{
		Id:           uuid.New(),
		UserId:       userId,
		RemoteUserId: remoteUserId,
		AgentKey:     agentKey,
		Title:        title,
		CreatedAt:    now,
	}

	conv := state.NewConversation(chatSession.Id, userId, remoteUserId, agentKey)
	if profile, err := rt.gateway.UserContext(ctx, remoteUserId); err == nil {
		conv.Profile = profile
	} else {
		s.logger.Warn("AgentService", "failed to load user context, continuing without profile", map[string]interface{}{
			"error": err.Error(), "user_id": userId.String(),
		})
	}

	result, err := rt.executor.RunTurn(ctx, conv, "")
	if err != nil {
		return nil, err
	}

	messages := make([]*entity.ChatMessage, 0, len(result.Replies))
	for i, reply := range result.Replies {
		section := string(conv.CurrentSection)
		if i < len(result.ReplySections) {
			section = string(result.ReplySections[i])
		}
		messages = append(messages, &entity.ChatMessage{
			Id:            uuid.New(),
			Chat:          reply,
			Role:          constant.ChatMessageRoleAssistant,
			Section:       section,
			ChatSessionId: chatSession.Id,
			CreatedAt:     now.Add(time.Duration(i) * time.Millisecond),
		})
	}
	chatSession.CurrentSection = string(conv.CurrentSection)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		if err := uow.ChatMessageRepository().CreateBulk(ctx, messages); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.convRepo.Save(conv)
	s.publishEvent(ctx, dto.AgentEventMessage{
		SessionId: chatSession.Id,
		UserId:    userId,
		AgentKey:  agentKey,
		EventType: constant.EventConversationStarted,
	})

	return &dto.CreateSessionResponse{
		SessionId:      chatSession.Id,
		AgentKey:       agentKey,
		Title:          title,
		CurrentSection: string(conv.CurrentSection),
		Replies:        result.Replies,
		CreatedAt:      now,
	}, nil
}

func (s *agentService) GetAllSessions(ctx context.Context, agentKey string, userId uuid.UUID, limit, offset int) ([]*dto.GetAllSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	limit, offset = normalizePage(limit, offset)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByAgentKey{AgentKey: agentKey},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, sess := range chatSessions {
		response = append(response, &dto.GetAllSessionsResponse{
			SessionId:      sess.Id,
			AgentKey:       sess.AgentKey,
			Title:          sess.Title,
			CurrentSection: sess.CurrentSection,
			Finished:       sess.Finished,
			CreatedAt:      sess.CreatedAt,
			UpdatedAt:      sess.UpdatedAt,
		})
	}
	return response, nil
}

func (s *agentService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, limit, offset int) ([]*dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	limit, offset = normalizePage(limit, offset)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetChatHistoryResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		response = append(response, &dto.GetChatHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Chat:      msg.Chat,
			Section:   msg.Section,
			CreatedAt: msg.CreatedAt,
		})
	}
	return response, nil
}

// SendChat runs one interview turn. A redis lock serializes turns per
// session; the engine assumes a single writer per conversation.
func (s *agentService) SendChat(ctx context.Context, agentKey string, userId uuid.UUID, remoteUserId int64, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	rt, err := s.runtime(agentKey)
	if err != nil {
		return nil, err
	}

	unlock, err := s.acquireTurnLock(ctx, request.SessionId)
	if err != nil {
		return nil, err
	}
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: request.SessionId},
		specification.UserOwnedBy{UserID: userId},
		specification.ByAgentKey{AgentKey: agentKey},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	conv, ok := s.convRepo.Get(request.SessionId)
	if !ok {
		conv, err = s.rebuildConversation(ctx, rt, sess)
		if err != nil {
			return nil, err
		}
	}

	sectionBefore := string(conv.CurrentSection)
	result, err := rt.executor.RunTurn(ctx, conv, request.Message)
	if err != nil {
		return nil, err
	}

	if err := s.persistTurn(ctx, sess, conv, request.Message, sectionBefore, result); err != nil {
		return nil, err
	}
	s.convRepo.Save(conv)

	s.emitTurnEvents(ctx, sess, conv, result)

	return &dto.SendChatResponse{
		SessionId:      sess.Id,
		Replies:        result.Replies,
		CurrentSection: string(conv.CurrentSection),
		SectionsSaved:  sectionIDs(result.SectionsSaved),
		Finished:       result.Finished,
		ExportURL:      result.ExportURL,
		Degraded:       result.Degraded,
	}, nil
}

func (s *agentService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("session not found or access denied")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.convRepo.Delete(sessionId)
	if !sess.Finished {
		s.publishEvent(ctx, dto.AgentEventMessage{
			SessionId: sessionId,
			UserId:    userId,
			AgentKey:  sess.AgentKey,
			EventType: constant.EventConversationAbandoned,
		})
	}
	return nil
}

// GetSectionsStatus reads progress from the remote store and enriches it
// with the latest local snapshots where available.
func (s *agentService) GetSectionsStatus(ctx context.Context, agentKey string, userId uuid.UUID, remoteUserId int64) (*dto.SectionsStatusResponse, error) {
	rt, err := s.runtime(agentKey)
	if err != nil {
		return nil, err
	}

	statuses, err := rt.gateway.ListStatus(ctx, remoteUserId)
	if err != nil {
		return nil, err
	}

	snapshots := s.latestSnapshots(ctx, agentKey, userId)

	done := make(map[catalog.SectionID]bool)
	sections := make([]dto.SectionStatusResponse, 0, rt.definition.Catalog.Len())
	for _, id := range rt.definition.Catalog.Order() {
		desc, _ := rt.definition.Catalog.Descriptor(id)
		st := statuses[id]
		if st == state.StatusDone {
			done[id] = true
		}
		row := dto.SectionStatusResponse{
			SectionId: string(id),
			Title:     desc.Title,
			Status:    string(st),
		}
		if snap, ok := snapshots[string(id)]; ok {
			row.Score = snap.Score
			row.PlainText = snap.PlainText
		}
		sections = append(sections, row)
	}

	response := &dto.SectionsStatusResponse{
		AgentKey: agentKey,
		Sections: sections,
	}
	if next, ok := rt.definition.Catalog.NextUnfinished(done); ok {
		response.NextSection = string(next)
	} else {
		response.Finished = true
	}
	return response, nil
}

// ErrExportNotReady is returned when an export is requested while sections
// are still open. Export is only valid once every section is done.
var ErrExportNotReady = errors.New("sections still in progress")

func (s *agentService) Export(ctx context.Context, agentKey string, remoteUserId int64) (*dto.ExportResponse, error) {
	rt, err := s.runtime(agentKey)
	if err != nil {
		return nil, err
	}

	statuses, err := rt.gateway.ListStatus(ctx, remoteUserId)
	if err != nil {
		return nil, err
	}
	done := make(map[catalog.SectionID]bool)
	for id, st := range statuses {
		if st == state.StatusDone {
			done[id] = true
		}
	}
	if next, open := rt.definition.Catalog.NextUnfinished(done); open {
		return nil, fmt.Errorf("%w: %s is still open", ErrExportNotReady, next)
	}

	url, err := rt.gateway.Export(ctx, remoteUserId)
	if err != nil {
		return nil, err
	}
	return &dto.ExportResponse{AgentKey: agentKey, ExportURL: url}, nil
}

// rebuildConversation restores in-memory state from the session row, the
// remote store and the transcript after a restart or cache eviction.
func (s *agentService) rebuildConversation(ctx context.Context, rt *agentRuntime, sess *entity.ChatSession) (*state.Conversation, error) {
	conv := state.NewConversation(sess.Id, sess.UserId, sess.RemoteUserId, sess.AgentKey)
	conv.Finished = sess.Finished

	statuses, err := rt.gateway.ListStatus(ctx, sess.RemoteUserId)
	if err != nil {
		s.logger.Warn("AgentService", "rebuild could not reach remote store, assuming nothing done", map[string]interface{}{
			"error": err.Error(), "session_id": sess.Id.String(),
		})
	} else {
		for id, st := range statuses {
			conv.Section(id).Status = st
		}
	}

	if profile, err := rt.gateway.UserContext(ctx, sess.RemoteUserId); err == nil {
		conv.Profile = profile
	}

	if sess.CurrentSection != "" && rt.definition.Catalog.Contains(catalog.SectionID(sess.CurrentSection)) {
		cur := catalog.SectionID(sess.CurrentSection)
		conv.CurrentSection = cur
		conv.Directive = state.Stay()

		res := rt.gateway.Load(ctx, sess.RemoteUserId, cur)
		sec := conv.Section(cur)
		sec.Status = res.Status
		sec.Content = res.Content
		sec.PlainText = res.PlainText
		sec.Score = res.Score

		s.restoreShortMemory(ctx, conv, sess.Id, string(cur))
	}

	return conv, nil
}

func (s *agentService) restoreShortMemory(ctx context.Context, conv *state.Conversation, sessionId uuid.UUID, section string) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		s.logger.Warn("AgentService", "failed to restore short memory", map[string]interface{}{
			"error": err.Error(), "session_id": sessionId.String(),
		})
		return
	}
	for _, msg := range messages {
		if msg.Section != section {
			continue
		}
		conv.Remember(msg.Role, msg.Chat)
	}
}

func (s *agentService) persistTurn(ctx context.Context, sess *entity.ChatSession, conv *state.Conversation, userMessage, sectionBefore string, result *executor.TurnResult) error {
	now := time.Now()

	messages := []*entity.ChatMessage{{
		Id:            uuid.New(),
		Chat:          userMessage,
		Role:          constant.ChatMessageRoleUser,
		Section:       sectionBefore,
		ChatSessionId: sess.Id,
		CreatedAt:     now,
	}}
	for i, reply := range result.Replies {
		// On an advancing turn the first reply still belongs to the section
		// it closed, not to the section the turn landed on.
		section := sectionBefore
		if i < len(result.ReplySections) {
			section = string(result.ReplySections[i])
		}
		messages = append(messages, &entity.ChatMessage{
			Id:            uuid.New(),
			Chat:          reply,
			Role:          constant.ChatMessageRoleAssistant,
			Section:       section,
			ChatSessionId: sess.Id,
			CreatedAt:     now.Add(time.Duration(i+1) * time.Millisecond),
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().CreateBulk(ctx, messages); err != nil {
		return err
	}

	for _, id := range result.SectionsSaved {
		sec := conv.Section(id)
		var raw []byte
		if sec.Content != nil {
			encoded, err := sec.Content.Encode()
			if err == nil {
				raw = encoded
			}
		}
		snapshot := &entity.SectionSnapshot{
			Id:        uuid.New(),
			SessionId: sess.Id,
			AgentKey:  sess.AgentKey,
			SectionId: string(id),
			Content:   raw,
			PlainText: sec.PlainText,
			Score:     sec.Score,
			Satisfied: sec.Satisfied,
			Status:    string(sec.Status),
			CreatedAt: now,
		}
		if err := uow.SectionSnapshotRepository().Upsert(ctx, snapshot); err != nil {
			return err
		}
	}

	sess.CurrentSection = string(conv.CurrentSection)
	sess.Finished = conv.Finished
	sess.UpdatedAt = &now
	if err := uow.ChatSessionRepository().Update(ctx, sess); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *agentService) emitTurnEvents(ctx context.Context, sess *entity.ChatSession, conv *state.Conversation, result *executor.TurnResult) {
	for i, reply := range result.Replies {
		section := conv.CurrentSection
		if i < len(result.ReplySections) {
			section = result.ReplySections[i]
		}
		s.stream(conv.UserID, ws.StreamMessage{
			Type:      "agent_reply",
			SessionId: sess.Id.String(),
			AgentKey:  sess.AgentKey,
			SectionId: string(section),
			Reply:     reply,
		})
	}

	for _, id := range result.SectionsSaved {
		s.stream(conv.UserID, ws.StreamMessage{
			Type:      "section_saved",
			SessionId: sess.Id.String(),
			AgentKey:  sess.AgentKey,
			SectionId: string(id),
		})
		s.publishEvent(ctx, dto.AgentEventMessage{
			SessionId: sess.Id,
			UserId:    conv.UserID,
			AgentKey:  sess.AgentKey,
			EventType: constant.EventSectionSaved,
			SectionId: string(id),
		})
	}

	if result.Finished {
		s.publishEvent(ctx, dto.AgentEventMessage{
			SessionId: sess.Id,
			UserId:    conv.UserID,
			AgentKey:  sess.AgentKey,
			EventType: constant.EventConversationFinished,
		})
	}
	if result.ExportURL != "" {
		s.stream(conv.UserID, ws.StreamMessage{
			Type:      "export_ready",
			SessionId: sess.Id.String(),
			AgentKey:  sess.AgentKey,
			ExportURL: result.ExportURL,
		})
		s.publishEvent(ctx, dto.AgentEventMessage{
			SessionId: sess.Id,
			UserId:    conv.UserID,
			AgentKey:  sess.AgentKey,
			EventType: constant.EventExportReady,
			ExportURL: result.ExportURL,
		})
	}
}

// acquireTurnLock takes the per-session turn lock. Without redis the service
// runs unlocked, acceptable for a single instance.
func (s *agentService) acquireTurnLock(ctx context.Context, sessionId uuid.UUID) (func(), error) {
	if s.redisClient == nil {
		return func() {}, nil
	}
	key := constant.TurnLockPrefix + sessionId.String()
	ok, err := s.redisClient.SetNX(ctx, key, "1", turnLockTTL).Result()
	if err != nil {
		s.logger.Warn("AgentService", "redis unavailable, proceeding without turn lock", map[string]interface{}{
			"error": err.Error(),
		})
		return func() {}, nil
	}
	if !ok {
		return nil, fmt.Errorf("a turn is already in progress for this session")
	}
	return func() {
		if err := s.redisClient.Del(context.Background(), key).Err(); err != nil {
			s.logger.Warn("AgentService", "failed to release turn lock", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}, nil
}

func (s *agentService) publishEvent(ctx context.Context, event dto.AgentEventMessage) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("AgentService", "failed to publish agent event", map[string]interface{}{
			"error": err.Error(), "event_type": event.EventType,
		})
	}
}

func (s *agentService) stream(userId uuid.UUID, msg ws.StreamMessage) {
	if s.hub == nil {
		return
	}
	s.hub.SendToUser(userId, msg)
}

func (s *agentService) latestSnapshots(ctx context.Context, agentKey string, userId uuid.UUID) map[string]*entity.SectionSnapshot {
	snapshots := make(map[string]*entity.SectionSnapshot)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByAgentKey{AgentKey: agentKey},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil || sess == nil {
		return snapshots
	}

	rows, err := uow.SectionSnapshotRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sess.Id},
	)
	if err != nil {
		return snapshots
	}
	for _, row := range rows {
		snapshots[row.SectionId] = row
	}
	return snapshots
}

func sectionIDs(ids []catalog.SectionID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}
