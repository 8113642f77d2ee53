package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/lucasdotdev/waveline/internal/domain"
)

// MemoryRoomStore is the in-memory room registry. It owns the only shared
// mutable state of the relay: the peer table and the room membership maps.
// All access goes through the mutex; join, leave and member listing are
// serialized so per-room notification order follows mutation order.
type MemoryRoomStore struct {
	peers  map[uuid.UUID]domain.Peer
	rooms  map[string]map[uuid.UUID]struct{}
	joined map[uuid.UUID]map[string]struct{}
	sync.RWMutex
}

func NewMemoryRoomStore() *MemoryRoomStore {
	return &MemoryRoomStore{
		peers:  make(map[uuid.UUID]domain.Peer),
		rooms:  make(map[string]map[uuid.UUID]struct{}),
		joined: make(map[uuid.UUID]map[string]struct{}),
	}
}

func (s *MemoryRoomStore) Connect(ctx context.Context, peer domain.Peer) error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.peers[peer.Handle]; ok {
		return nil
	}

	s.peers[peer.Handle] = peer
	return nil
}

// Disconnect removes the peer and its memberships. It returns the rooms the
// peer belonged to so the caller can notify the remaining members. Rooms
// left empty are discarded.
func (s *MemoryRoomStore) Disconnect(ctx context.Context, handle uuid.UUID) ([]string, error) {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.peers[handle]; !ok {
		return nil, nil
	}

	delete(s.peers, handle)

	roomIDs := make([]string, 0, len(s.joined[handle]))
	for roomID := range s.joined[handle] {
		roomIDs = append(roomIDs, roomID)
		s.removeMember(handle, roomID)
	}

	delete(s.joined, handle)
	return roomIDs, nil
}

// Join adds the handle to the room, creating the room entry if needed. It
// reports whether the membership is new; joining twice has no extra effect.
func (s *MemoryRoomStore) Join(ctx context.Context, handle uuid.UUID, roomID string) (bool, error) {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.peers[handle]; !ok {
		return false, domain.ErrUnknownPeer
	}

	members, ok := s.rooms[roomID]
	if !ok {
		members = make(map[uuid.UUID]struct{})
		s.rooms[roomID] = members
	}

	if _, ok := members[handle]; ok {
		return false, nil
	}

	members[handle] = struct{}{}

	if _, ok := s.joined[handle]; !ok {
		s.joined[handle] = make(map[string]struct{})
	}
	s.joined[handle][roomID] = struct{}{}

	return true, nil
}

// Leave removes the handle from the room and reports whether it was a
// member.
func (s *MemoryRoomStore) Leave(ctx context.Context, handle uuid.UUID, roomID string) (bool, error) {
	s.Lock()
	defer s.Unlock()

	members, ok := s.rooms[roomID]
	if !ok {
		return false, nil
	}

	if _, ok := members[handle]; !ok {
		return false, nil
	}

	s.removeMember(handle, roomID)
	delete(s.joined[handle], roomID)

	return true, nil
}

func (s *MemoryRoomStore) Peer(ctx context.Context, handle uuid.UUID) (domain.Peer, error) {
	s.RLock()
	defer s.RUnlock()

	peer, ok := s.peers[handle]
	if !ok {
		return domain.Peer{}, domain.ErrUnknownPeer
	}

	return peer, nil
}

func (s *MemoryRoomStore) RoomMembers(ctx context.Context, roomID string) ([]domain.Peer, error) {
	s.RLock()
	defer s.RUnlock()

	members := make([]domain.Peer, 0, len(s.rooms[roomID]))
	for handle := range s.rooms[roomID] {
		if peer, ok := s.peers[handle]; ok {
			members = append(members, peer)
		}
	}

	return members, nil
}

func (s *MemoryRoomStore) Peers(ctx context.Context) ([]domain.Peer, error) {
	s.RLock()
	defer s.RUnlock()

	peers := make([]domain.Peer, 0, len(s.peers))
	for _, peer := range s.peers {
		peers = append(peers, peer)
	}

	return peers, nil
}

// removeMember must be called with the write lock held.
func (s *MemoryRoomStore) removeMember(handle uuid.UUID, roomID string) {
	members, ok := s.rooms[roomID]
	if !ok {
		return
	}

	delete(members, handle)
	if len(members) == 0 {
		delete(s.rooms, roomID)
	}
}
