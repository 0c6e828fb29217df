//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

// TestAPI_FullFlow exercises the deployed service end-to-end: seed the
// gallery, submit a booking, fetch it back, then run the like scenario.
func TestAPI_FullFlow(t *testing.T) {
	waitForService(t)

	var bookingID string

	t.Run("Step1_SeedPortfolio", func(t *testing.T) {
		resp := post(t, baseURL+"/api/v1/portfolio/seed", nil)
		require.Equal(t, 200, resp.StatusCode)

		var seed map[string]interface{}
		decodeJSON(t, resp, &seed)
		assert.Equal(t, float64(40), seed["total_count"])
	})

	t.Run("Step2_ListAthletics", func(t *testing.T) {
		resp := get(t, baseURL+"/api/v1/portfolio?category=athletics")
		require.Equal(t, 200, resp.StatusCode)

		var images []map[string]interface{}
		decodeJSON(t, resp, &images)
		require.Len(t, images, 20)
		assert.Equal(t, "/portfolio/athletics/sample-1.jpg", images[0]["src"])
		assert.Equal(t, float64(1), images[0]["order"])
		assert.Equal(t, float64(20), images[19]["order"])
	})

	t.Run("Step3_SubmitBooking", func(t *testing.T) {
		resp := post(t, baseURL+"/api/v1/bookings", map[string]interface{}{
			"name":             "Jane Doe",
			"email":            "jane@example.com",
			"tier":             "Premium",
			"category":         "Portraits",
			"portrait_details": "Outdoor golden hour",
		})
		require.Equal(t, 201, resp.StatusCode)

		var created map[string]interface{}
		decodeJSON(t, resp, &created)
		bookingID, _ = created["id"].(string)
		require.NotEmpty(t, bookingID)
	})

	t.Run("Step4_FetchBooking", func(t *testing.T) {
		resp := get(t, baseURL+"/api/v1/bookings/"+bookingID)
		require.Equal(t, 200, resp.StatusCode)

		var booking map[string]interface{}
		decodeJSON(t, resp, &booking)
		assert.Equal(t, "pending", booking["status"])
		assert.Equal(t, "Outdoor golden hour", booking["portrait_details"])
		assert.Nil(t, booking["sport_details"])
	})

	t.Run("Step5_RejectBadCategory", func(t *testing.T) {
		resp := post(t, baseURL+"/api/v1/bookings", map[string]interface{}{
			"name":     "Jane Doe",
			"email":    "jane@example.com",
			"tier":     "Premium",
			"category": "Weddings",
		})
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Step6_LikeScenario", func(t *testing.T) {
		for _, device := range []string{"device-A", "device-A", "device-B"} {
			resp := post(t, baseURL+"/api/v1/images/img-7/likes", map[string]interface{}{
				"device_id": device,
			})
			require.Equal(t, 204, resp.StatusCode)
		}

		resp := get(t, baseURL+"/api/v1/images/img-7/likes")
		require.Equal(t, 200, resp.StatusCode)

		var count map[string]interface{}
		decodeJSON(t, resp, &count)
		assert.Equal(t, float64(2), count["likes"])
	})
}

func waitForService(t *testing.T) {
	for i := 0; i < 30; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return
		}
		time.Sleep(time.Second)
	}
	t.Fatal("service did not become ready")
}

func get(t *testing.T, url string) *http.Response {
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func post(t *testing.T, url string, body map[string]interface{}) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := http.Post(url, "application/json", &buf)
	require.NoError(t, err, fmt.Sprintf("POST %s", url))
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
