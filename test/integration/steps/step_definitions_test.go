// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tracker-app/backend/internal/application/usecase/auth"
	"github.com/tracker-app/backend/internal/application/usecase/board"
	"github.com/tracker-app/backend/internal/application/usecase/category"
	"github.com/tracker-app/backend/internal/application/usecase/completion"
	"github.com/tracker-app/backend/internal/application/usecase/statistics"
	"github.com/tracker-app/backend/internal/application/usecase/suggestion"
	"github.com/tracker-app/backend/internal/application/usecase/tracker"
	"github.com/tracker-app/backend/internal/domain/entity"
	"github.com/tracker-app/backend/internal/domain/valueobject"
	"github.com/tracker-app/backend/internal/infra/server/router"
	"github.com/tracker-app/backend/internal/integration/adapters"
	"github.com/tracker-app/backend/internal/integration/entrypoint/controller"
	"github.com/tracker-app/backend/internal/integration/entrypoint/middleware"
	"github.com/tracker-app/backend/internal/integration/persistence"
	"github.com/tracker-app/backend/internal/integration/persistence/model"
	"github.com/tracker-app/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri            string
	headers        map[string]string
	client         *http.Client
	response       *response
	db             *mock.Db
	serverPort     int
	accessToken    string
	refreshToken   string
	currentUserID  uuid.UUID
	categoryIDs    map[string]uuid.UUID
	trackerIDs     map[string]uuid.UUID
	lastCategoryID uuid.UUID
	lastTrackerID  uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("tracker_app", map[string]any{
			"users":               &model.UserModel{},
			"refresh_tokens":      &model.RefreshTokenModel{},
			"categories":          &model.CategoryModel{},
			"trackers":            &model.TrackerModel{},
			"completion_records":  &model.CompletionRecordModel{},
			"email_queue":         &model.EmailQueueModel{},
			"tracker_suggestions": &model.TrackerSuggestionModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Board setup steps
	ctx.Given(`^a category exists with title "([^"]*)"$`, test.aCategoryExistsWithTitle)
	ctx.Given(`^a tracker exists with title "([^"]*)" in category "([^"]*)"$`, test.aTrackerExistsWithTitleInCategory)
	ctx.Given(`^a weekend tracker exists with title "([^"]*)" in category "([^"]*)"$`, test.aWeekendTrackerExistsWithTitleInCategory)
	ctx.Given(`^the tracker "([^"]*)" is pinned$`, test.theTrackerIsPinned)
	ctx.Given(`^the tracker "([^"]*)" is completed on "([^"]*)"$`, test.theTrackerIsCompletedOn)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.categoryIDs = make(map[string]uuid.UUID)
	t.trackerIDs = make(map[string]uuid.UUID)
	t.lastCategoryID = uuid.Nil
	t.lastTrackerID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			trackerRepo := persistence.NewTrackerRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			completionRepo := persistence.NewCompletionRepository(testDB.DbConn)
			suggestionRepo := persistence.NewSuggestionRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			filterPrefs := adapters.NewFilterPreferenceStore(mock.NewRedis())
			// No API key: the suggestion endpoint reports unavailable
			geminiService := adapters.NewGeminiService("", "")

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create tracker use cases
			listTrackersUseCase := tracker.NewListTrackersUseCase(trackerRepo)
			createTrackerUseCase := tracker.NewCreateTrackerUseCase(trackerRepo, categoryRepo)
			updateTrackerUseCase := tracker.NewUpdateTrackerUseCase(trackerRepo, categoryRepo)
			deleteTrackerUseCase := tracker.NewDeleteTrackerUseCase(trackerRepo)
			pinTrackerUseCase := tracker.NewPinTrackerUseCase(trackerRepo)

			// Create category use cases
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)

			// Create board use cases
			visibleSectionsUseCase := board.NewVisibleSectionsUseCase(trackerRepo, categoryRepo, completionRepo, filterPrefs)
			getFilterUseCase := board.NewGetFilterUseCase(filterPrefs)
			setFilterUseCase := board.NewSetFilterUseCase(filterPrefs)

			// Create completion, statistics and suggestion use cases
			toggleCompletionUseCase := completion.NewToggleCompletionUseCase(trackerRepo, completionRepo)
			getStatisticsUseCase := statistics.NewGetStatisticsUseCase(trackerRepo, completionRepo)
			suggestTrackerUseCase := suggestion.NewSuggestTrackerUseCase(geminiService, suggestionRepo, categoryRepo)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			trackerController := controller.NewTrackerController(
				listTrackersUseCase,
				createTrackerUseCase,
				updateTrackerUseCase,
				deleteTrackerUseCase,
				pinTrackerUseCase,
			)

			categoryController := controller.NewCategoryController(
				listCategoriesUseCase,
				createCategoryUseCase,
			)

			boardController := controller.NewBoardController(
				visibleSectionsUseCase,
				getFilterUseCase,
				setFilterUseCase,
			)

			completionController := controller.NewCompletionController(toggleCompletionUseCase)
			statisticsController := controller.NewStatisticsController(getStatisticsUseCase)
			paletteController := controller.NewPaletteController()
			suggestionController := controller.NewSuggestionController(suggestTrackerUseCase)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				trackerController,
				categoryController,
				boardController,
				completionController,
				statisticsController,
				paletteController,
				suggestionController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		WeeklyDigest: true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	// Generate access token
	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "tracker-app",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	// Generate refresh token
	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(30 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "tracker-app",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	// Store refresh token in database
	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(30 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) aCategoryExistsWithTitle(title string) error {
	categoryID := uuid.New()
	t.categoryIDs[title] = categoryID
	t.lastCategoryID = categoryID

	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}

	result := t.db.DbConn.Create(categoryModel)
	return result.Error
}

func (t *testContext) aTrackerExistsWithTitleInCategory(title, categoryTitle string) error {
	return t.createTracker(title, categoryTitle, valueobject.NewSchedule(
		valueobject.Sunday, valueobject.Monday, valueobject.Tuesday, valueobject.Wednesday,
		valueobject.Thursday, valueobject.Friday, valueobject.Saturday,
	))
}

func (t *testContext) aWeekendTrackerExistsWithTitleInCategory(title, categoryTitle string) error {
	return t.createTracker(title, categoryTitle, valueobject.NewSchedule(
		valueobject.Saturday, valueobject.Sunday,
	))
}

func (t *testContext) createTracker(title, categoryTitle string, schedule valueobject.Schedule) error {
	categoryID, ok := t.categoryIDs[categoryTitle]
	if !ok {
		return fmt.Errorf("category %q has not been created", categoryTitle)
	}

	scheduleBlob, err := json.Marshal(schedule)
	if err != nil {
		return err
	}

	trackerID := uuid.New()
	t.trackerIDs[title] = trackerID
	t.lastTrackerID = trackerID

	now := time.Now().UTC()
	trackerModel := &model.TrackerModel{
		ID:           trackerID,
		UserID:       t.currentUserID,
		Title:        title,
		Emoji:        entity.TrackerEmojis[0],
		Color:        entity.TrackerColors[0],
		ScheduleBlob: string(scheduleBlob),
		CategoryID:   &categoryID,
		IsPinned:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(trackerModel)
	return result.Error
}

func (t *testContext) theTrackerIsPinned(title string) error {
	trackerID, ok := t.trackerIDs[title]
	if !ok {
		return fmt.Errorf("tracker %q has not been created", title)
	}
	return t.db.DbConn.Model(&model.TrackerModel{}).
		Where("id = ?", trackerID).
		Update("is_pinned", true).Error
}

func (t *testContext) theTrackerIsCompletedOn(title, dateStr string) error {
	trackerID, ok := t.trackerIDs[title]
	if !ok {
		return fmt.Errorf("tracker %q has not been created", title)
	}

	date, err := time.Parse("2006-01-02", t.replacePlaceholders(dateStr))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	record := &model.CompletionRecordModel{
		ID:        uuid.New(),
		TrackerID: trackerID,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}

	result := t.db.DbConn.Create(record)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{category_id}}", t.lastCategoryID.String())
	content = strings.ReplaceAll(content, "{{tracker_id}}", t.lastTrackerID.String())
	content = strings.ReplaceAll(content, "{{today}}", time.Now().UTC().Format("2006-01-02"))
	content = strings.ReplaceAll(content, "{{tomorrow}}", time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02"))

	for title, id := range t.categoryIDs {
		content = strings.ReplaceAll(content, "{{category_id:"+title+"}}", id.String())
	}
	for title, id := range t.trackerIDs {
		content = strings.ReplaceAll(content, "{{tracker_id:"+title+"}}", id.String())
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture created resource IDs from the response
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				if title, hasTitle := responseBody["title"].(string); hasTitle {
					if _, isTracker := responseBody["schedule"]; isTracker {
						t.trackerIDs[title] = id
						t.lastTrackerID = id
					} else {
						t.categoryIDs[title] = id
						t.lastCategoryID = id
					}
				}
			}
		}

		// Capture tokens from auth responses
		if token, ok := responseBody["access_token"].(string); ok && token != "" {
			t.accessToken = token
		}
		if token, ok := responseBody["refresh_token"].(string); ok && token != "" {
			t.refreshToken = token
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	count, err := t.countRows(table, nil)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	count, err := t.countRows(table, criteria)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// countRows counts rows in a registered table, optionally filtered by
// column equality. A slice of the table's model type is built through
// reflection so Find scans into the right schema.
func (t *testContext) countRows(table string, criteria map[string]any) (int, error) {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return 0, fmt.Errorf("table '%s' not found in models", table)
	}

	slicePtr := reflect.New(reflect.SliceOf(reflect.TypeOf(entity).Elem()))

	query := t.db.DbConn.Unscoped()
	for column, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", column), value)
	}

	if err := query.Find(slicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	return slicePtr.Elem().Len(), nil
}

// getFieldValue resolves a dot-separated path into decoded JSON. Numeric
// path segments index into arrays, everything else keys into objects.
func getFieldValue(object any, path string) any {
	current := object
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			current = node[i]
		case map[string]any:
			current = node[segment]
		default:
			return nil
		}
	}
	return current
}
