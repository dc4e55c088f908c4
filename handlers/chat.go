package handlers

import (
	"context"
	"net/http"
	"time"

	"tropicab/models"
	"tropicab/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const historyLimit = 20

// ChatHandler runs one conversation turn: load context, process, persist.
func (hb *HandlerBundle) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	bc, err := hb.ContextStore.Get(c, req.SessionID)
	if err != nil {
		hb.Logger.Error("chat: failed to load context", zap.String("sessionId", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load conversation"})
		return
	}

	var history []models.ChatMessage
	if hb.Transcripts != nil {
		if h, err := hb.Transcripts.BySession(c, req.SessionID, historyLimit); err == nil {
			history = h
		}
	}

	resp := hb.Engine.ProcessQuery(c, bc, req.Text, history)

	if err := hb.ContextStore.Set(c, req.SessionID, bc); err != nil {
		hb.Logger.Error("chat: failed to save context", zap.String("sessionId", req.SessionID), zap.Error(err))
	}
	hb.recordTranscript(req.SessionID, req.Text, resp.Message)

	c.JSON(http.StatusOK, gin.H{"sessionId": req.SessionID, "response": resp})
}

// PriceScanHandler re-enters the flow after a UI-driven vehicle pick.
func (hb *HandlerBundle) PriceScanHandler(c *gin.Context) {
	var sel models.PriceScanSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bc, err := hb.ContextStore.Get(c, sel.SessionID)
	if err != nil {
		hb.Logger.Error("chat: failed to load context", zap.String("sessionId", sel.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load conversation"})
		return
	}

	resp := hb.Engine.SetContextForPriceScan(bc, sel)

	if err := hb.ContextStore.Set(c, sel.SessionID, bc); err != nil {
		hb.Logger.Error("chat: failed to save context", zap.String("sessionId", sel.SessionID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sel.SessionID, "response": resp})
}

// ClearChatHandler drops the session's conversation context.
func (hb *HandlerBundle) ClearChatHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := hb.ContextStore.Clear(c, sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conversation cleared"})
}

func (hb *HandlerBundle) recordTranscript(sessionID, userText, agentText string) {
	if hb.Transcripts == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for _, msg := range []models.ChatMessage{
			{ID: uuid.New().String(), SessionID: sessionID, Role: "user", Text: userText, CreatedAt: time.Now().UTC()},
			{ID: uuid.New().String(), SessionID: sessionID, Role: "agent", Text: agentText, CreatedAt: time.Now().UTC()},
		} {
			if err := hb.Transcripts.Append(ctx, msg); err != nil {
				hb.Logger.Warn("chat: failed to persist transcript", zap.String("sessionId", sessionID), zap.Error(err))
				return
			}
		}
	}()
}
