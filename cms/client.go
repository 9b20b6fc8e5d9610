// Package cms talks to the headless CMS content API and mirrors the course
// catalog into the relational store. The application never writes course
// content; the CMS is the authoring surface.
package cms

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// CourseSummary is a catalog entry as returned by the CMS list endpoint.
type CourseSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Language     string `json:"language"`
	Duration     int64  `json:"duration"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Published    bool   `json:"published"`
}

// OptionPayload is one answer option of a quiz question.
type OptionPayload struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// QuestionPayload is one quiz question with its options.
type QuestionPayload struct {
	ID      string          `json:"id"`
	Prompt  string          `json:"prompt"`
	Options []OptionPayload `json:"options"`
}

// LessonPayload is a lesson inside a module; Quiz is nil for quizless lessons.
type LessonPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ContentType string `json:"contentType"`
	Body        string `json:"body"`
	VideoURL    string `json:"videoUrl"`
	Quiz        *struct {
		Questions []QuestionPayload `json:"questions"`
	} `json:"quiz"`
}

// ModulePayload is a module with its ordered lessons.
type ModulePayload struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Lessons     []LessonPayload `json:"lessons"`
}

// CourseDetail is the full course payload: summary plus ordered modules.
type CourseDetail struct {
	CourseSummary
	Modules []ModulePayload `json:"modules"`
}

type listResponse struct {
	Courses []CourseSummary `json:"courses"`
}

type detailResponse struct {
	Course CourseDetail `json:"course"`
}

// Client is a read-only client for the CMS content API.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for the given CMS endpoint. The API key is sent as
// a bearer token on every request.
func NewClient(baseURL, apiKey string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(15 * time.Second)

	return &Client{http: client}
}

// ListCourses fetches the catalog summaries.
func (c *Client) ListCourses() ([]CourseSummary, error) {
	var payload listResponse
	resp, err := c.http.R().
		SetResult(&payload).
		Get("/api/courses")
	if err != nil {
		return nil, fmt.Errorf("cms list courses: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("cms list courses: unexpected status %d: %s", resp.StatusCode(), resp.String())
	}
	return payload.Courses, nil
}

// GetCourse fetches one course with its modules, lessons and quizzes.
func (c *Client) GetCourse(courseID string) (*CourseDetail, error) {
	var payload detailResponse
	resp, err := c.http.R().
		SetResult(&payload).
		SetPathParam("id", courseID).
		Get("/api/courses/{id}")
	if err != nil {
		return nil, fmt.Errorf("cms get course %s: %v", courseID, err)
	}
	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("cms course %s not found", courseID)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("cms get course %s: unexpected status %d: %s", courseID, resp.StatusCode(), resp.String())
	}
	return &payload.Course, nil
}
