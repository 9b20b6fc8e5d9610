package cms

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"courses":[
			{"id":"crs-1","title":"Working Across Cultures","language":"en","duration":4,"published":true},
			{"id":"crs-2","title":"Inclusive Communication","language":"en","duration":2,"published":false}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	courses, err := client.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "crs-1", courses[0].ID)
	assert.True(t, courses[0].Published)
	assert.False(t, courses[1].Published)
}

func TestGetCourse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses/crs-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"course":{
			"id":"crs-1","title":"Working Across Cultures","published":true,
			"modules":[
				{"id":"m1","title":"Foundations","lessons":[
					{"id":"l1","title":"Why culture matters","contentType":"TEXT","body":"..."},
					{"id":"l2","title":"Check your understanding","contentType":"TEXT","quiz":{"questions":[
						{"id":"q1","prompt":"Pick one","options":[
							{"id":"o1","text":"A","correct":true},
							{"id":"o2","text":"B"}
						]}
					]}}
				]},
				{"id":"m2","title":"In Practice","lessons":[]}
			]
		}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	course, err := client.GetCourse("crs-1")
	require.NoError(t, err)

	require.Len(t, course.Modules, 2)
	assert.Equal(t, "m1", course.Modules[0].ID)
	require.Len(t, course.Modules[0].Lessons, 2)
	assert.Nil(t, course.Modules[0].Lessons[0].Quiz)
	require.NotNil(t, course.Modules[0].Lessons[1].Quiz)
	assert.Len(t, course.Modules[0].Lessons[1].Quiz.Questions, 1)
}

func TestGetCourseNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.GetCourse("missing")
	assert.Error(t, err)
}

func TestListCoursesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.ListCourses()
	assert.Error(t, err)
}
