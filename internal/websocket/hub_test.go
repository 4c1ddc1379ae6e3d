package websocket

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	userID   uuid.UUID
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id string, userID uuid.UUID) *mockClient {
	return &mockClient{
		id:       id,
		userID:   userID,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) UserID() uuid.UUID {
	return m.userID
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	userA := uuid.New()
	userB := uuid.New()

	client1 := newMockClient("client-1", userA)
	client2 := newMockClient("client-2", userA)
	client3 := newMockClient("client-3", userB)

	hub.Register(client1)
	hub.Register(client2)
	hub.Register(client3)

	assert.Equal(t, 2, hub.ClientCount(userA))
	assert.Equal(t, 1, hub.ClientCount(userB))
	assert.Equal(t, 3, hub.TotalClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount(userA))
	assert.Equal(t, 2, hub.TotalClientCount())

	hub.Unregister(client2)
	hub.Unregister(client3)
	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestHub_UnregisterUnknownClient(t *testing.T) {
	hub := NewHub()
	client := newMockClient("never-registered", uuid.New())

	// Should not panic
	hub.Unregister(client)
	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestHub_BroadcastDeliversToUserClientsOnly(t *testing.T) {
	hub := NewHub()

	userA := uuid.New()
	userB := uuid.New()

	client1 := newMockClient("client-1", userA)
	client2 := newMockClient("client-2", userA)
	client3 := newMockClient("client-3", userB)

	hub.Register(client1)
	hub.Register(client2)
	hub.Register(client3)

	event := ExpenseCreated(map[string]string{"id": "abc"})
	hub.Broadcast(userA, event)

	// Sends are asynchronous
	require.Eventually(t, func() bool {
		return len(client1.GetMessages()) == 1 && len(client2.GetMessages()) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Empty(t, client3.GetMessages())

	var decoded Event
	require.NoError(t, json.Unmarshal(client1.GetMessages()[0], &decoded))
	assert.Equal(t, "expense.created", decoded.Type)
	assert.Equal(t, EntityTypeExpense, decoded.Entity)
}

func TestHub_BroadcastNoClients(t *testing.T) {
	hub := NewHub()

	// Should not panic when nobody is connected
	hub.Broadcast(uuid.New(), SettingsUpdated(nil))
}

func TestEvent_TypeComposition(t *testing.T) {
	cases := []struct {
		event Event
		want  string
	}{
		{ExpenseDeleted(nil), "expense.deleted"},
		{CategoryUpdated(nil), "category.updated"},
		{BudgetCreated(nil), "budget.created"},
		{OverallBudgetUpdated(nil), "overall_budget.updated"},
		{IncomeSourceToggled(nil), "income_source.toggled"},
		{SettingsUpdated(nil), "settings.updated"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.event.Type)
	}
}
