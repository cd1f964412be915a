package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
	"github.com/KirkDiggler/enhancement-calculator/internal/services/calculator"
)

func (s *Server) listVariants(c *gin.Context) {
	tables := s.service.ListRuleTables(c.Request.Context())

	out := make([]VariantResponse, 0, len(tables))
	for _, table := range tables {
		out = append(out, toVariantResponse(table))
	}
	c.JSON(http.StatusOK, gin.H{"variants": out})
}

func (s *Server) getVariantEffects(c *gin.Context) {
	table, err := s.service.GetRuleTable(c.Request.Context(), rulebook.Variant(c.Param("variant")))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEffectsResponse(table))
}

func (s *Server) getVariantHelp(c *gin.Context) {
	table, err := s.service.GetRuleTable(c.Request.Context(), rulebook.Variant(c.Param("variant")))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toHelpResponse(table))
}

func (s *Server) price(c *gin.Context) {
	// omitted fields keep the defaults of a fresh calculator
	req := PriceRequest{Selection: enhancement.NewSelection()}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}

	result, err := s.service.Price(c.Request.Context(), &calculator.PriceInput{
		Variant:   rulebook.Variant(req.Variant),
		Selection: req.Selection,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) listSessions(c *gin.Context) {
	sessions, err := s.service.ListSessions(c.Request.Context(), c.Query("owner_id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	if sessions == nil {
		sessions = []*enhancement.Session{}
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (s *Server) createSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}

	result, err := s.service.StartSession(c.Request.Context(), &calculator.StartSessionInput{
		OwnerID:       req.OwnerID,
		Variant:       rulebook.Variant(req.Variant),
		EnhancerLevel: req.EnhancerLevel,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) getSession(c *gin.Context) {
	result, err := s.service.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) deleteSession(c *gin.Context) {
	if err := s.service.EndSession(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) sessionAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid request body"))
		return
	}

	result, err := s.applyAction(c, c.Param("id"), &req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) applyAction(c *gin.Context, id string, req *ActionRequest) (*calculator.Result, error) {
	ctx := c.Request.Context()
	svc := s.service

	switch req.Action {
	case ActionToggleMultipleTargets:
		return svc.ToggleMultipleTargets(ctx, id)
	case ActionToggleLostCard:
		return svc.ToggleLostCard(ctx, id)
	case ActionTogglePersistentBonus:
		return svc.TogglePersistentBonus(ctx, id)
	case ActionReset:
		return svc.Reset(ctx, id)
	}

	switch req.Action {
	case ActionSelectCategory, ActionSelectPlayerEffect, ActionSelectSummonEffect, ActionSelectOtherEffect, ActionSetVariant:
		var value string
		if err := json.Unmarshal(req.Value, &value); err != nil {
			return nil, apperr.InvalidArgumentf("action %s needs a string value", req.Action).WithMeta("field", "value")
		}
		switch req.Action {
		case ActionSelectCategory:
			return svc.SelectCategory(ctx, id, enhancement.Category(value))
		case ActionSelectPlayerEffect:
			return svc.SelectPlayerPlusOneEffect(ctx, id, enhancement.EffectID(value))
		case ActionSelectSummonEffect:
			return svc.SelectSummonPlusOneEffect(ctx, id, enhancement.EffectID(value))
		case ActionSelectOtherEffect:
			return svc.SelectOtherEffect(ctx, id, enhancement.EffectID(value))
		default:
			return svc.SetVariant(ctx, id, rulebook.Variant(value))
		}

	case ActionSetTargetedHexCount, ActionSetCardLevel, ActionSetPriorEnhancements, ActionSetEnhancerLevel:
		var value int
		if err := json.Unmarshal(req.Value, &value); err != nil {
			return nil, apperr.InvalidArgumentf("action %s needs a whole number value", req.Action).WithMeta("field", "value")
		}
		switch req.Action {
		case ActionSetTargetedHexCount:
			return svc.SetTargetedHexCount(ctx, id, value)
		case ActionSetCardLevel:
			return svc.SetCardLevel(ctx, id, value)
		case ActionSetPriorEnhancements:
			return svc.SetPriorEnhancements(ctx, id, value)
		default:
			return svc.SetEnhancerLevel(ctx, id, value)
		}
	}

	return nil, apperr.InvalidArgumentf("unknown action %q", req.Action).WithMeta("field", "action")
}
