package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"townroster/models"
	"townroster/pkg/ocr"
	"townroster/pkg/roster"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ocrEngine is swappable so tests can stub recognition without Tesseract.
var ocrEngine roster.Engine = ocr.NewTesseract()

func setupRoutes(r *gin.Engine) {
	r.POST("/register", registerHandler)
	r.POST("/login", loginHandler)
	r.POST("/refresh", refreshHandler)
	r.POST("/revoke_refresh", revokeRefreshHandler)
	authGroup := r.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.GET("/me", meHandler)
	authGroup.POST("/profile", createProfileHandler)
	authGroup.GET("/profile", getProfileHandler)
	authGroup.GET("/stores", listStoresHandler)
	authGroup.GET("/residents", listResidentsHandler)
	authGroup.POST("/uploads", uploadScreenshotHandler)
	authGroup.GET("/uploads", listUploadsHandler)
	authGroup.GET("/uploads/:id", getUploadHandler)
	authGroup.POST("/imports/extract", extractResidentsHandler)
	authGroup.POST("/imports/apply", applyResidentsHandler)
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			c.Abort()
			return
		}
		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)
		c.Set("username", username)
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}
}

func meHandler(c *gin.Context) {
	usernameVal, _ := c.Get("username")
	if usernameVal == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "context missing username"})
		return
	}
	username := usernameVal.(string)
	c.JSON(http.StatusOK, gin.H{"username": username})
}

// getUserFromContext fetches the currently authenticated user using the username set by jwtAuthMiddleware
func getUserFromContext(c *gin.Context) (*models.User, bool) {
	unameVal, _ := c.Get("username")
	if unameVal == nil {
		return nil, false
	}
	uname := unameVal.(string)
	var user models.User
	if err := db.Where("username = ?", uname).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func registerHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := Register(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user registered successfully"})
}

func createProfileHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email"`
		TownName string `json:"town_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile := models.Profile{UserID: user.ID, Name: req.Name, Email: req.Email, TownName: req.TownName}
	if err := db.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": profile.ID})
}

func getProfileHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var p models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func loginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	// Generate JWT token. Resolve role name from RoleID (we only store role_id now).
	roleName := ""
	if user.RoleID != nil {
		var r models.Role
		if err := db.First(&r, *user.RoleID).Error; err == nil {
			roleName = r.Name
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"role":     roleName,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	// create refresh token
	refreshToken, err := createAndStoreRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": tokenString, "refresh_token": refreshToken})
}

// createAndStoreRefreshToken generates a random refresh token, stores its hash with expiry and returns the raw token string
func createAndStoreRefreshToken(userID uint) (string, error) {
	// generate random 32-byte token (hex)
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	// hash for storage
	h := sha256.Sum256([]byte(token))
	th := hex.EncodeToString(h[:])
	rt := models.RefreshToken{UserID: userID, TokenHash: th, ExpiresAt: time.Now().Add(30 * 24 * time.Hour)}
	if err := db.Create(&rt).Error; err != nil {
		return "", err
	}
	return token, nil
}

// helper to find refresh token record by raw token string
func findRefreshTokenByRaw(token string) (*models.RefreshToken, error) {
	h := sha256.Sum256([]byte(token))
	th := hex.EncodeToString(h[:])
	var rt models.RefreshToken
	if err := db.Where("token_hash = ?", th).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// refreshHandler exchanges a refresh token for a new access token and rotates the refresh token
func refreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}
	// load user
	var user models.User
	if err := db.First(&user, rt.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	// create access token
	roleName := ""
	if user.RoleID != nil {
		var r models.Role
		if err := db.First(&r, *user.RoleID).Error; err == nil {
			roleName = r.Name
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"role":     roleName,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	// rotate refresh token: revoke existing and create new one
	db.Model(&models.RefreshToken{}).Where("id = ?", rt.ID).Update("revoked", true)
	newRT, err := createAndStoreRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString, "refresh_token": newRT})
}

// revokeRefreshHandler revokes a given refresh token (useful on logout)
func revokeRefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "refresh token not found"})
		return
	}
	rt.Revoked = true
	if err := db.Save(rt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refresh token revoked"})
}

func listStoresHandler(c *gin.Context) {
	var stores []models.Store
	if err := db.Order("name asc").Find(&stores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, stores)
}

func listResidentsHandler(c *gin.Context) {
	var residents []models.Resident
	if err := db.Order("name asc").Find(&residents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, residents)
}

// loadCatalog reads the store catalog from the database in pipeline form.
func loadCatalog() ([]roster.Store, error) {
	var stores []models.Store
	if err := db.Order("id asc").Find(&stores).Error; err != nil {
		return nil, err
	}
	out := make([]roster.Store, 0, len(stores))
	for _, s := range stores {
		out = append(out, roster.Store{ID: s.ID, Name: s.Name, Category: s.Category, Products: s.Products})
	}
	return out, nil
}

// uploadScreenshotHandler stores a roster screenshot under the current user's
// profile without running extraction. Extraction is a separate, explicit step.
func uploadScreenshotHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var profile models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile missing"})
		return
	}
	folder := c.PostForm("folder")
	if folder == "" {
		folder = "screens"
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if file.Size > 10*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 10MB)"})
		return
	}
	ct := file.Header.Get("Content-Type")
	baseDir := uploadBaseDir()
	relPath := folder + "/" + file.Filename
	fullPath := baseDir + "/" + relPath
	if err := os.MkdirAll(baseDir+"/"+folder, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mkdir failed"})
		return
	}
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	// Re-uploading the same screenshot returns the existing record.
	var existing models.Upload
	if err := db.Where("profile_id = ? AND file_name = ?", profile.ID, file.Filename).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"id": existing.ID, "path": relPath, "store_path": existing.StorePath})
		return
	}

	up := models.Upload{ProfileID: profile.ID, FileName: file.Filename, StorePath: "public/" + relPath, ContentType: ct}
	if err := db.Create(&up).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": up.ID, "path": relPath, "store_path": up.StorePath})
}

// listUploadsHandler returns uploads; admin sees all, user only own profile's uploads.
func listUploadsHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var profile models.Profile
	db.Where("user_id = ?", user.ID).First(&profile)
	var uploads []models.Upload
	q := db.Model(&models.Upload{})
	if role != "administrator" {
		q = q.Where("profile_id = ?", profile.ID)
	}
	if err := q.Order("id desc").Limit(100).Find(&uploads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, uploads)
}

// getUploadHandler returns single upload if admin or owner.
func getUploadHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var profile models.Profile
	db.Where("user_id = ?", user.ID).First(&profile)
	id := c.Param("id")
	var up models.Upload
	if err := db.First(&up, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if role != "administrator" && up.ProfileID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, up)
}

// extractResidentsHandler accepts one or more screenshots via multipart form
// field "files", runs OCR extraction against the store catalog and returns
// candidates for review. Nothing is persisted to the residents table here.
func extractResidentsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var profile models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile missing"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form expected"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})
		return
	}

	catalog, err := loadCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load store catalog"})
		return
	}
	if len(catalog) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store catalog is empty; seed stores first"})
		return
	}

	tmpDir, err := os.MkdirTemp("", "roster-import-*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "temp dir failed"})
		return
	}
	defer os.RemoveAll(tmpDir)

	var paths []string
	uploadByName := map[string]*models.Upload{}
	for _, f := range files {
		dst := filepath.Join(tmpDir, filepath.Base(f.Filename))
		if err := c.SaveUploadedFile(f, dst); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
			return
		}
		paths = append(paths, dst)

		up := models.Upload{ProfileID: profile.ID, FileName: filepath.Base(f.Filename), ContentType: f.Header.Get("Content-Type")}
		if err := db.Where("profile_id = ? AND file_name = ?", profile.ID, up.FileName).FirstOrCreate(&up).Error; err == nil {
			uploadByName[up.FileName] = &up
		}
	}

	candidates, err := roster.ExtractFromScreenshots(c.Request.Context(), paths, catalog, ocrEngine, roster.DefaultConfig(), nil)
	if err != nil {
		for _, up := range uploadByName {
			up.Failed = true
			up.FailedReason = err.Error()
			db.Save(up)
		}
		log.Printf("extraction failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "extraction failed"})
		return
	}

	perFile := map[string]int{}
	for _, cand := range candidates {
		perFile[cand.SourceFileName]++
	}
	for name, up := range uploadByName {
		up.CandidateCount = perFile[name]
		up.Failed = false
		up.FailedReason = ""
		db.Save(up)
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates, "fileCount": len(paths)})
}

// applyResidentsHandler persists reviewed candidates. Only selected candidates
// with a name are applied; residents are upserted by name.
func applyResidentsHandler(c *gin.Context) {
	if _, ok := getUserFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Candidates []roster.Candidate `json:"candidates" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, updated, skipped := 0, 0, 0
	for _, cand := range req.Candidates {
		if !cand.Selected || cand.Name == "" {
			skipped++
			continue
		}
		res := models.Resident{
			Name:            cand.Name,
			CurrentJobRaw:   cand.CurrentJobRaw,
			DreamJobRaw:     cand.DreamJobRaw,
			MatchConfidence: cand.MatchConfidence,
			SourceFileName:  cand.SourceFileName,
		}
		if cand.CurrentJobStoreID != "" {
			id := cand.CurrentJobStoreID
			res.CurrentJobStoreID = &id
		}
		if cand.DreamJobStoreID != "" {
			id := cand.DreamJobStoreID
			res.DreamJobStoreID = &id
		}

		var existing models.Resident
		if err := db.Where("name = ?", res.Name).First(&existing).Error; err == nil {
			res.ID = existing.ID
			res.CreatedAt = existing.CreatedAt
			if err := db.Save(&res).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
				return
			}
			updated++
			continue
		}
		if err := db.Create(&res).Error; err != nil {
			if isUniqueConstraintError(err) {
				skipped++
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
			return
		}
		created++
	}
	c.JSON(http.StatusOK, gin.H{"created": created, "updated": updated, "skipped": skipped})
}
