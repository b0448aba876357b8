package service

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"inbot/internal/model"
	"inbot/internal/repository"
)

const (
	topN          = 5
	minKeywordLen = 3
	dayLayout     = "2006-01-02"
)

var nonWordChars = regexp.MustCompile(`\W`)

// Count is one bucket of a distribution.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Dashboard aggregates a user's documents and conversations.
type Dashboard struct {
	TotalDocuments             int                  `json:"total_documents"`
	TotalBytes                 int64                `json:"total_bytes"`
	LargestFiles               []model.File         `json:"largest_files"`
	RecentFiles                []model.File         `json:"recent_files"`
	FileTypes                  []Count              `json:"file_types"`
	UploadsPerDay              []Count              `json:"uploads_per_day"`
	TotalConversations         int                  `json:"total_conversations"`
	RecentConversations        []model.Conversation `json:"recent_conversations"`
	ConversationsPerDay        []Count              `json:"conversations_per_day"`
	TotalMessages              int                  `json:"total_messages"`
	MessagesPerDay             []Count              `json:"messages_per_day"`
	AvgMessagesPerConversation float64              `json:"avg_messages_per_conversation"`
	RoleDistribution           []Count              `json:"role_distribution"`
	TotalUserWords             int                  `json:"total_user_words"`
	TopKeywords                []Count              `json:"top_keywords"`
}

// AnalyticsService computes the dashboard.
type AnalyticsService interface {
	Dashboard(ctx context.Context, userID string) (*Dashboard, error)
}

type analyticsService struct {
	files         repository.FileRepository
	conversations repository.ConversationRepository
	messages      repository.MessageRepository
	loc           *time.Location
}

// NewAnalyticsService buckets days in loc.
func NewAnalyticsService(
	files repository.FileRepository,
	conversations repository.ConversationRepository,
	messages repository.MessageRepository,
	loc *time.Location,
) AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &analyticsService{files: files, conversations: conversations, messages: messages, loc: loc}
}

func (s *analyticsService) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	files, err := s.files.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	convs, err := s.conversations.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	msgs, err := s.messages.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalDocuments:     len(files),
		TotalConversations: len(convs),
		TotalMessages:      len(msgs),
	}

	types := map[string]int{}
	uploads := map[string]int{}
	for _, f := range files {
		d.TotalBytes += f.Size
		if f.FileType != "" {
			types[strings.ToLower(f.FileType)]++
		}
		uploads[s.day(f.UploadedAt)]++
	}
	d.FileTypes = byCountDesc(types)
	d.UploadsPerDay = byKey(uploads)

	largest := append([]model.File(nil), files...)
	sort.SliceStable(largest, func(i, j int) bool { return largest[i].Size > largest[j].Size })
	d.LargestFiles = head(largest, topN)

	recent := append([]model.File(nil), files...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].UploadedAt.After(recent[j].UploadedAt) })
	d.RecentFiles = head(recent, topN)

	convDays := map[string]int{}
	for _, c := range convs {
		convDays[s.day(c.CreatedAt)]++
	}
	d.ConversationsPerDay = byKey(convDays)

	recentConvs := append([]model.Conversation(nil), convs...)
	sort.SliceStable(recentConvs, func(i, j int) bool { return recentConvs[i].CreatedAt.After(recentConvs[j].CreatedAt) })
	d.RecentConversations = head(recentConvs, topN)

	msgDays := map[string]int{}
	words := map[string]int{}
	var users, bots int
	for _, m := range msgs {
		msgDays[s.day(m.CreatedAt)]++
		switch m.Role {
		case model.RoleUser:
			users++
			fields := strings.Fields(m.Message)
			d.TotalUserWords += len(fields)
			for _, w := range fields {
				clean := nonWordChars.ReplaceAllString(strings.ToLower(w), "")
				if len(clean) < minKeywordLen {
					continue
				}
				words[clean]++
			}
		case model.RoleBot:
			bots++
		}
	}
	d.MessagesPerDay = byKey(msgDays)
	d.RoleDistribution = []Count{{Key: model.RoleUser, Count: users}, {Key: model.RoleBot, Count: bots}}
	d.TopKeywords = head(byCountDesc(words), topN)

	if len(convs) > 0 {
		d.AvgMessagesPerConversation = math.Round(float64(len(msgs))/float64(len(convs))*100) / 100
	}
	return d, nil
}

func (s *analyticsService) day(t time.Time) string {
	return t.In(s.loc).Format(dayLayout)
}

// byCountDesc orders buckets by count, ties alphabetically.
func byCountDesc(m map[string]int) []Count {
	out := toCounts(m)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// byKey orders buckets by key; for days that is chronological.
func byKey(m map[string]int) []Count {
	out := toCounts(m)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func toCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Key: k, Count: v})
	}
	return out
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
