package reviewController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"reviews/config"
	"reviews/contenttypes"
	"reviews/database"
	"reviews/middleware"
	"reviews/models"
	reviewRoutes "reviews/routers/reviewRoutes"
)

// apiEnvelope is the JsonResponse wire format.
type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every handler on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Review{},
		&models.ReviewAggregate{},
		&models.Product{},
		&models.Seller{},
	))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		Port:          "0",
		JWTKey:        "test-secret",
		SaltRound:     4,
		AdminBasePath: "/admin",
	}

	contenttypes.Reset()
	require.NoError(t, models.RegisterReviewables())

	app := fiber.New()
	reviewRoutes.SetupReviewRoutes(app)
	reviewRoutes.SetupAdminReviewRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, role string) models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    name + "@example.com",
		Role:     role,
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func authToken(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

func createReview(t *testing.T, db *gorm.DB, contentType string, objectID, userID uint, score int, comment string, approved bool) models.Review {
	t.Helper()

	review := models.Review{
		UID:             uuid.NewString(),
		ContentType:     contentType,
		ObjectID:        objectID,
		UserID:          userID,
		Score:           score,
		Comment:         comment,
		CommentApproved: approved,
	}
	require.NoError(t, db.Create(&review).Error)
	return review
}

// doJSON performs a request against the app and decodes the envelope.
func doJSON(t *testing.T, app *fiber.App, method, url, token string, body interface{}) (int, apiEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope apiEnvelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope))
	}
	return resp.StatusCode, envelope
}
