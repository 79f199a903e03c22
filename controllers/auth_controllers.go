package controllers

import (
	"context"
	"log"
	"os"

	"hotel/constants"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/services"
	"hotel/validator"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// Register đăng ký tài khoản mới, mặc định role guest
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, email and password are required")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     models.RoleGuest,
		Status:   constants.UserStatusActive,
	}
	if err := validator.ValidateUser(&user); err != nil {
		writeAppError(c, err)
		return
	}

	var count int64
	ac.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Email already registered")
		return
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = hashed

	if err := ac.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Created(c, dto.LoginResponse{Token: token, User: toUserResponse(user)})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		response.Error(c, 401, "Invalid email or password")
		return
	}
	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}
	if !services.CheckPassword(user.Password, req.Password) {
		response.Error(c, 401, "Invalid email or password")
		return
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, dto.LoginResponse{Token: token, User: toUserResponse(user)})
}

// AuthGoogle đăng nhập bằng Google ID token, tự tạo tài khoản nếu chưa có
func (ac *AuthController) AuthGoogle(c *gin.Context) {
	var req struct {
		IDToken string `json:"id_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "id_token is required")
		return
	}

	payload, err := verifyGoogleIDToken(req.IDToken)
	if err != nil {
		log.Printf("Google token không hợp lệ: %v", err)
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{}
	if email, ok := payload.Claims["email"].(string); ok {
		googleUser.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		googleUser.Name = name
	}
	if googleUser.Email == "" {
		response.BadRequest(c, "Google token has no email")
		return
	}

	var user models.User
	err = ac.DB.Where("email = ?", googleUser.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:   googleUser.Name,
			Email:  googleUser.Email,
			Role:   models.RoleGuest,
			Status: constants.UserStatusActive,
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if err != nil {
		response.ServerError(c)
		return
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, dto.LoginResponse{Token: token, User: toUserResponse(user)})
}

// GetProfile trả về thông tin user từ token đã xác thực
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}
	response.Success(c, toUserResponse(user))
}

// Xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
