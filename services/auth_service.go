package services

import (
	"fmt"
	"net/smtp"
	"os"
	"time"

	"hotel/constants"
	"hotel/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken tạo JWT cho user, hạn 7 ngày
func GenerateToken(user models.User) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{UserId: user.ID, Role: user.Role},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so khớp mật khẩu với hash đã lưu
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

func smtpCredentials() (string, string, bool) {
	email := os.Getenv("EMAIL_ADDRESS")
	password := os.Getenv("EMAIL_PASSWORD")
	if email == "" || password == "" {
		return "", "", false
	}
	return email, password, true
}

func sendMail(to, subject, body string) error {
	from, password, ok := smtpCredentials()
	if !ok {
		// Không cấu hình SMTP thì bỏ qua, không chặn luồng đặt phòng
		return nil
	}

	host := "smtp.gmail.com"
	port := "587"
	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\r\n\r\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

// SendBookingEmail báo cho lễ tân có booking mới
func SendBookingEmail(booking models.Booking, roomNumber, roomType string) error {
	staff, _, ok := smtpCredentials()
	if !ok {
		return nil
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<body>
		<p>New booking received:</p>
		<ul>
			<li>Customer: <strong>%s</strong> (%s, %s)</li>
			<li>Room: <strong>%s</strong> (%s)</li>
			<li>Check-in: <strong>%s</strong></li>
			<li>Check-out: <strong>%s</strong></li>
			<li>Total: <strong>RM%.2f</strong></li>
		</ul>
	</body>
	</html>`, booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		roomNumber, roomType,
		booking.CheckIn.Format(constants.DateLayout),
		booking.CheckOut.Format(constants.DateLayout),
		booking.TotalPrice)

	return sendMail(staff, fmt.Sprintf("New Booking - %s", booking.CustomerName), body)
}

// SendConfirmationEmail báo cho khách khi booking được duyệt
func SendConfirmationEmail(booking models.Booking, roomNumber, roomType string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<body>
		<p>Dear %s,</p>
		<p>Your booking has been confirmed!</p>
		<ul>
			<li>Booking ID: <strong>%d</strong></li>
			<li>Room: <strong>%s</strong> (%s)</li>
			<li>Check-in: <strong>%s</strong></li>
			<li>Check-out: <strong>%s</strong></li>
			<li>Total Amount: <strong>RM%.2f</strong></li>
		</ul>
		<p>Thank you for choosing our hotel. We look forward to welcoming you!</p>
	</body>
	</html>`, booking.CustomerName, booking.ID, roomNumber, roomType,
		booking.CheckIn.Format(constants.DateLayout),
		booking.CheckOut.Format(constants.DateLayout),
		booking.TotalPrice)

	return sendMail(booking.CustomerEmail, fmt.Sprintf("Booking Confirmed - %s", roomType), body)
}
