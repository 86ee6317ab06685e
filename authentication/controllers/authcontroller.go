package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/BenDePortival/student-collaboration-api/internal/util"
	"github.com/BenDePortival/student-collaboration-api/models"
	"github.com/BenDePortival/student-collaboration-api/repositories"
)

// AuthController handles registration, login, and the current-user lookup.
// The signing secret is injected at construction and never changes.
type AuthController struct {
	Users     repositories.UserStore
	JWTSecret string
}

func NewAuthController(users repositories.UserStore, jwtSecret string) *AuthController {
	return &AuthController{Users: users, JWTSecret: jwtSecret}
}

type RegisterRequest struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	FullName          string `json:"full_name"`
	Bio               string `json:"bio"`
	AcademicInterests string `json:"academic_interests"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (a *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Username, email and password are required",
		})
	}

	// Check if email already exists
	if _, err := a.Users.FindByEmail(req.Email); err == nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Email already exists",
		})
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("Registration lookup failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Registration failed",
		})
	}

	// Check if username already exists
	if _, err := a.Users.FindByUsername(req.Username); err == nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Username already exists",
		})
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("Registration lookup failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Registration failed",
		})
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Registration failed",
		})
	}

	user := &models.User{
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      string(hashedPassword),
		FullName:          req.FullName,
		Bio:               req.Bio,
		AcademicInterests: req.AcademicInterests,
	}

	if err := a.Users.Create(user); err != nil {
		log.Printf("Failed to create user: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Registration failed",
		})
	}

	token, err := util.CreateAccessToken(user.ID, a.JWTSecret)
	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Registration failed",
		})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"token":   token,
		"user":    user.Public(),
	})
}

// Login handles user login and JWT token creation. Unknown email and wrong
// password produce the same response so error text cannot be used to probe
// which accounts exist.
func (a *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}

	user, err := a.Users.FindByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Login lookup failed: %v", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"message": "Login failed",
			})
		}
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	token, err := util.CreateAccessToken(user.ID, a.JWTSecret)
	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Login failed",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}

// User returns the authenticated user's public profile.
func (a *AuthController) User(c *fiber.Ctx) error {
	userID, ok := c.Locals("x-user-id").(uint)
	if !ok {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not get user ID from token",
		})
	}

	user, err := a.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		log.Printf("User lookup failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to load user",
		})
	}

	return c.JSON(fiber.Map{"user": user.Public()})
}
