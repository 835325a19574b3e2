package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/smtp"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/KhaledELG/portfolio-kelg/internal/config"
	"github.com/KhaledELG/portfolio-kelg/internal/content"
	"github.com/KhaledELG/portfolio-kelg/internal/github"
	"github.com/KhaledELG/portfolio-kelg/internal/logging"
)

func main() {
	logging.Init()
	settings := config.Load()

	if err := initDB(settings.DatabasePath); err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer closeDB()
	initAdminToken()
	initVisitorTracking()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := github.NewClient(settings.GitHubUsername, settings.GitHubToken)
	service := github.NewService(client, settings.CacheTTL)

	// Warm the cache before accepting traffic. An unreachable GitHub only
	// logs a warning; the site starts either way.
	service.WarmCache(ctx)
	go service.RefreshPeriodically(ctx, settings.CacheTTL)

	experiences, err := content.LoadExperiences("data/experience.json")
	if err != nil {
		log.Warnf("failed to load experiences: %v", err)
	}
	certifications, err := content.LoadCertifications("data/certifications.json")
	if err != nil {
		log.Warnf("failed to load certifications: %v", err)
	}
	locales, err := content.LoadLocales("locales", settings.DefaultLocale)
	if err != nil {
		log.Fatalf("failed to load locales: %v", err)
	}

	if settings.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.Default())
	r.LoadHTMLGlob("templates/*")

	r.Static("/static", "./static")
	r.Use(visitorTrackingMiddleware())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		projects, err := service.FetchRepos(c.Request.Context(), nil, 6)
		if err != nil {
			// The page still renders, just without the projects section.
			log.Warnf("rendering home page without projects: %v", err)
			projects = nil
		}

		lang := c.Query("lang")
		if lang == "" {
			lang = settings.DefaultLocale
		}

		c.HTML(http.StatusOK, "index.html", gin.H{
			"appName":        settings.AppName,
			"strings":        locales.Bundle(lang),
			"skills":         content.Skills,
			"techStack":      content.TechStack,
			"experiences":    experiences,
			"certifications": certifications,
			"projects":       projects,
		})
	})

	// JSON project listing, optionally narrowed by ?topics=a,b
	r.GET("/api/projects", func(c *gin.Context) {
		var topicsFilter []string
		if topics := c.Query("topics"); topics != "" {
			topicsFilter = strings.Split(topics, ",")
		}

		projects, err := service.FetchRepos(c.Request.Context(), topicsFilter, 20)
		if err != nil {
			if errors.Is(err, github.ErrRemoteUnavailable) {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"error": "project list temporarily unavailable",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, projects)
	})

	r.GET("/resume", func(c *gin.Context) {
		c.FileAttachment("static/resume/resume.pdf", "resume.pdf")
	})

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		name := c.PostForm("fullName")
		email := c.PostForm("email")
		message := c.PostForm("message")

		if err := sendContactEmail(name, email, message); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})

	setupAdminRoutes(r)

	srv := &http.Server{Addr: ":" + settings.Port, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Infof("%s listening on :%s", settings.AppName, settings.Port)

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
}

func sendContactEmail(name, email, message string) error {
	smtpHost := os.Getenv("SMTP_HOST") // e.g., "smtp.gmail.com"
	smtpPort := os.Getenv("SMTP_PORT") // e.g., "587"
	smtpUser := os.Getenv("SMTP_USER") // sending account
	smtpPass := os.Getenv("SMTP_PASS") // app password
	toEmail := os.Getenv("TO_EMAIL")   // where submissions land

	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}
	if toEmail == "" {
		toEmail = smtpUser
	}

	if smtpUser == "" || smtpPass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from the portfolio:

Name: %s
Email: %s
Message:
%s
`, name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + smtpUser + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, smtpUser, []string{toEmail}, msg); err != nil {
		log.Warnf("error sending contact email: %v", err)
		return err
	}

	log.Infof("contact email sent from %s (%s)", name, email)
	return nil
}
