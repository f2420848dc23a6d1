package server

import (
	"matchday/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/users/:userId/send-friend-request
//
// Duplicate detection is on the ordered (requester, recipient) pair only: a
// reverse-direction request and a self-request are both still allowed.
// Tightening either would change the API contract, so both stay as-is.
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := callerID(c)
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	// Target must exist
	if _, getUserErr := s.userRepo.GetByID(ctx, targetUserID); getUserErr != nil {
		return respond(c, getUserErr)
	}

	// Fast-path duplicate check; the unique index still catches the race
	// where two concurrent sends both pass it.
	existing, getErr := s.friendRepo.GetByUsers(ctx, userID, targetUserID)
	if getErr != nil {
		return respond(c, getErr)
	}
	if existing != nil {
		return respond(c, models.NewDuplicateRequestError())
	}

	request := &models.FriendRequest{
		FromUserID: userID,
		ToUserID:   targetUserID,
		Status:     models.FriendRequestStatusPending,
	}
	if createErr := s.friendRepo.Create(ctx, request); createErr != nil {
		return respond(c, createErr)
	}

	// Load full request for the response
	request, loadErr := s.friendRepo.GetByID(ctx, request.ID)
	if loadErr != nil {
		return respond(c, loadErr)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// AcceptFriendRequest handles POST /api/users/:userId/accept-friend-request
// :userId is the requester; the caller is the recipient. Only a pending edge
// transitions; accept after accept (or decline) reports not-found because the
// lookup filters on pending.
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := callerID(c)
	fromUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	request, trErr := s.friendRepo.TransitionPending(ctx, userID, fromUserID,
		models.FriendRequestStatusAccepted)
	if trErr != nil {
		return respond(c, trErr)
	}

	return c.JSON(request)
}

// DeclineFriendRequest handles POST /api/users/:userId/decline-friend-request
func (s *Server) DeclineFriendRequest(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := callerID(c)
	fromUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	request, trErr := s.friendRepo.TransitionPending(ctx, userID, fromUserID,
		models.FriendRequestStatusRejected)
	if trErr != nil {
		return respond(c, trErr)
	}

	return c.JSON(request)
}

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.friendRepo.GetFriends(c.Context(), callerID(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(friends)
}

// GetPendingRequests handles GET /api/friends/requests
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	requests, err := s.friendRepo.GetPendingReceived(c.Context(), callerID(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(requests)
}

// GetSentRequests handles GET /api/friends/requests/sent
func (s *Server) GetSentRequests(c *fiber.Ctx) error {
	requests, err := s.friendRepo.GetPendingSent(c.Context(), callerID(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(requests)
}
