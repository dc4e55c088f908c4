package handlers

import (
	"net/http"
	"time"

	"tropicab/config"
	"tropicab/models"
	"tropicab/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminLoginHandler exchanges the admin credentials for a JWT.
func (hb *HandlerBundle) AdminLoginHandler(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required"`
		Key   string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if in.Email != config.AppConfig.AdminEmail || in.Key != config.AppConfig.AdminKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(in.Email, 12*time.Hour)
	if err != nil {
		hb.Logger.Error("admin: failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (hb *HandlerBundle) SaveHotelHandler(c *gin.Context) {
	var h models.Hotel
	if err := c.ShouldBindJSON(&h); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id, err := hb.Catalog.SaveHotel(c, h)
	if err != nil {
		hb.Logger.Error("admin: failed to save hotel", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save hotel"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (hb *HandlerBundle) DeleteHotelHandler(c *gin.Context) {
	if err := hb.Catalog.DeleteHotel(c, c.Param("id")); err != nil {
		hb.Logger.Error("admin: failed to delete hotel", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete hotel"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hotel deleted"})
}

func (hb *HandlerBundle) SaveVehicleTypeHandler(c *gin.Context) {
	var v models.VehicleType
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id, err := hb.Catalog.SaveVehicleType(c, v)
	if err != nil {
		hb.Logger.Error("admin: failed to save vehicle type", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save vehicle type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (hb *HandlerBundle) SavePricingRuleHandler(c *gin.Context) {
	var r models.PricingRule
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id, err := hb.Catalog.SavePricingRule(c, r)
	if err != nil {
		hb.Logger.Error("admin: failed to save pricing rule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save pricing rule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (hb *HandlerBundle) DeletePricingRuleHandler(c *gin.Context) {
	if err := hb.Catalog.DeletePricingRule(c, c.Param("id")); err != nil {
		hb.Logger.Error("admin: failed to delete pricing rule", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete pricing rule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pricing rule deleted"})
}

func (hb *HandlerBundle) SetDiscountHandler(c *gin.Context) {
	var d models.DiscountSetting
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if d.Pct < 0 || d.Pct >= 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "discount must be in [0, 100)"})
		return
	}
	if err := hb.Catalog.SetDiscount(c, d); err != nil {
		hb.Logger.Error("admin: failed to set discount", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set discount"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "discount updated"})
}
