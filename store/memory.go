package store

import (
	"context"
	"sort"
	"sync"

	"stepbuddy_server/models"
)

// In-memory store implementations. They back the test suite and local
// development without AWS credentials; the DynamoDB implementations are the
// production path.

// MemoryProfileStore implements ProfileStore over a map
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]models.UserProfile)}
}

func (s *MemoryProfileStore) Put(_ context.Context, profile models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = profile
	return nil
}

func (s *MemoryProfileStore) Get(_ context.Context, userID string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &profile, nil
}

func (s *MemoryProfileStore) Update(_ context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}

	for k, v := range updates {
		switch k {
		case "name":
			profile.Name, _ = v.(string)
		case "stepGoal":
			// JSON-decoded updates arrive as float64
			switch n := v.(type) {
			case int:
				profile.StepGoal = n
			case float64:
				profile.StepGoal = int(n)
			}
		case "pace":
			profile.Pace, _ = v.(string)
		case "availability":
			profile.Availability = toStringSlice(v)
		case "location":
			profile.Location, _ = v.(string)
		case "bio":
			profile.Bio, _ = v.(string)
		case "photoUrl":
			profile.PhotoURL, _ = v.(string)
		case "badges":
			profile.Badges = toStringSlice(v)
		case "updatedAt":
			profile.UpdatedAt, _ = v.(string)
		}
	}

	s.profiles[userID] = profile
	return &profile, nil
}

// toStringSlice accepts both []string and the []interface{} a JSON-decoded
// request body produces
func toStringSlice(v interface{}) []string {
	switch vs := v.(type) {
	case []string:
		return vs
	case []interface{}:
		out := make([]string, 0, len(vs))
		for _, e := range vs {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (s *MemoryProfileStore) ScanAllExcept(_ context.Context, userID string) ([]models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.profiles))
	for id := range s.profiles {
		if id != userID {
			ids = append(ids, id)
		}
	}
	// Stable enumeration order keeps ranking ties deterministic
	sort.Strings(ids)

	profiles := make([]models.UserProfile, 0, len(ids))
	for _, id := range ids {
		profiles = append(profiles, s.profiles[id])
	}
	return profiles, nil
}

// MemorySwipeStore implements SwipeStore over a map keyed by the ordered pair
type MemorySwipeStore struct {
	mu     sync.RWMutex
	swipes map[string]map[string]models.Swipe // userId -> targetUserId -> swipe
}

func NewMemorySwipeStore() *MemorySwipeStore {
	return &MemorySwipeStore{swipes: make(map[string]map[string]models.Swipe)}
}

func (s *MemorySwipeStore) Put(_ context.Context, swipe models.Swipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byTarget, ok := s.swipes[swipe.UserID]
	if !ok {
		byTarget = make(map[string]models.Swipe)
		s.swipes[swipe.UserID] = byTarget
	}
	byTarget[swipe.TargetUserID] = swipe
	return nil
}

func (s *MemorySwipeStore) Get(_ context.Context, userID, targetUserID string) (*models.Swipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	swipe, ok := s.swipes[userID][targetUserID]
	if !ok {
		return nil, ErrNotFound
	}
	return &swipe, nil
}

func (s *MemorySwipeStore) ListByUser(_ context.Context, userID string) ([]models.Swipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var swipes []models.Swipe
	for _, swipe := range s.swipes[userID] {
		swipes = append(swipes, swipe)
	}
	return swipes, nil
}

// MemoryMatchStore implements MatchStore over a map keyed by matchId
type MemoryMatchStore struct {
	mu      sync.RWMutex
	matches map[string]models.Match
}

func NewMemoryMatchStore() *MemoryMatchStore {
	return &MemoryMatchStore{matches: make(map[string]models.Match)}
}

func (s *MemoryMatchStore) Put(_ context.Context, match models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.MatchID] = match
	return nil
}

func (s *MemoryMatchStore) ListByUserA(_ context.Context, userID string) ([]models.Match, error) {
	return s.list(func(m models.Match) bool { return m.UserA == userID })
}

func (s *MemoryMatchStore) ListByUserB(_ context.Context, userID string) ([]models.Match, error) {
	return s.list(func(m models.Match) bool { return m.UserB == userID })
}

func (s *MemoryMatchStore) list(keep func(models.Match) bool) ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []models.Match
	for _, match := range s.matches {
		if keep(match) {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

// MemoryMessageStore implements MessageStore over per-conversation slices
type MemoryMessageStore struct {
	mu       sync.RWMutex
	messages map[string][]models.Message
}

func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{messages: make(map[string][]models.Message)}
}

func (s *MemoryMessageStore) Put(_ context.Context, message models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[message.ConversationID] = append(s.messages[message.ConversationID], message)
	return nil
}

func (s *MemoryMessageStore) ListByConversation(_ context.Context, conversationID string, limit int32, latestFirst bool) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]models.Message, len(s.messages[conversationID]))
	copy(messages, s.messages[conversationID])

	sort.SliceStable(messages, func(i, j int) bool {
		if latestFirst {
			return messages[i].Timestamp > messages[j].Timestamp
		}
		return messages[i].Timestamp < messages[j].Timestamp
	})

	if limit > 0 && int32(len(messages)) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}
