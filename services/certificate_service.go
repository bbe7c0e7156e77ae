package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/omondi254/campus_hub/configs"
	"github.com/omondi254/campus_hub/database"
	"github.com/omondi254/campus_hub/models"
)

const certificateCompletionCount = 10

// CheckAndGenerateCertificate issues a milestone certificate once a student
// has completed 10 sessions with the same tutor in the same subject. Runs
// fire-and-forget after a session completes; failures are logged only.
func CheckAndGenerateCertificate(session models.Session) {
	var completedCount int64
	database.DB.Model(&models.Session{}).
		Where("student_id = ? AND tutor_id = ? AND subject = ? AND status = ?",
			session.StudentID, session.TutorID, session.Subject, models.SessionStatusCompleted).
		Count(&completedCount)

	if completedCount < certificateCompletionCount {
		return
	}

	var student models.User
	if err := database.DB.First(&student, "id = ?", session.StudentID).Error; err != nil {
		log.Printf("🔥 Failed to load student %s for certificate: %v", session.StudentID, err)
		return
	}
	var tutor models.Tutor
	if err := database.DB.Preload("User").First(&tutor, "user_id = ?", session.TutorID).Error; err != nil {
		log.Printf("🔥 Failed to load tutor %s for certificate: %v", session.TutorID, err)
		return
	}

	courseTitle := fmt.Sprintf("%s with %s - %d Sessions", session.Subject, tutor.User.FullName, certificateCompletionCount)

	var existingCert models.Certificate
	if err := database.DB.Where("student_id = ? AND course_title = ?", session.StudentID, courseTitle).First(&existingCert).Error; err == nil {
		return
	}

	htmlData, err := generateCertificateHTML(student.FullName, tutor.User.FullName, courseTitle)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadCertificate(pdfBytes, session.StudentID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	newCertificate := models.Certificate{
		StudentID:      session.StudentID,
		TutorID:        session.TutorID,
		Subject:        session.Subject,
		CourseTitle:    courseTitle,
		CompletionDate: time.Now(),
		CertificateURL: uploadURL,
	}

	if err := database.DB.Create(&newCertificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for student %s: %v", session.StudentID, err)
		return
	}

	log.Printf("✅ Generated and uploaded certificate '%s' for student %s.", courseTitle, session.StudentID)
	Notify(session.StudentID, models.NotificationTypeSystem,
		"Certificate Earned!",
		fmt.Sprintf("You completed %d %s sessions and earned a certificate.", certificateCompletionCount, session.Subject),
		uploadURL)
}

func generateCertificateHTML(studentName, tutorName, courseTitle string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName    string
		TutorName      string
		CourseTitle    string
		CompletionDate string
	}{
		StudentName:    studentName,
		TutorName:      tutorName,
		CourseTitle:    courseTitle,
		CompletionDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificate(fileBytes []byte, studentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", studentID, uuid.New().String()),
		Folder:       "campus_hub_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
