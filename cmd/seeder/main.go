package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/LuisBatalla/auto-admin-portal/internal/models"
)

// Seeds the workshop with demo data through the HTTP API: ensures a
// regular user account exists, creates vehicles and work orders, and
// drives a share of the orders through their status transitions.

var authToken string

func authorizedRequest(method, url string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func login(apiURL, username, password string) (string, error) {
	resp, err := authorizedRequest(http.MethodPost, apiURL+"/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status: %d", resp.StatusCode)
	}

	var result models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	return result.Token, nil
}

func ensureAccount(apiURL, username, email, password string) (string, error) {
	resp, err := authorizedRequest(http.MethodPost, apiURL+"/auth/register", models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	resp.Body.Close()

	// Conflict means the account already exists from a previous run.
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusConflict {
		return "", fmt.Errorf("registration failed with status: %d", resp.StatusCode)
	}
	return login(apiURL, username, password)
}

var catalogue = []struct {
	Brand  string
	Models []string
}{
	{"Toyota", []string{"Corolla", "Hilux", "Yaris"}},
	{"Volkswagen", []string{"Gol", "Polo", "Amarok"}},
	{"Ford", []string{"Fiesta", "Ranger", "Focus"}},
	{"Chevrolet", []string{"Onix", "Cruze", "S10"}},
	{"Renault", []string{"Clio", "Kangoo", "Duster"}},
	{"Peugeot", []string{"208", "Partner", "308"}},
}

var services = []struct {
	Description string
	Cost        float64
}{
	{"Cambio de aceite y filtro", 85},
	{"Revisión de frenos", 150},
	{"Alineación y balanceo", 60},
	{"Cambio de correa de distribución", 420},
	{"Diagnóstico eléctrico", 95},
	{"Cambio de embrague", 680},
	{"Reparación de aire acondicionado", 230},
	{"Cambio de amortiguadores", 340},
}

func randomPlate() string {
	letters := "ABCDEFGHJKLMNPRSTUVWXYZ"
	plate := make([]byte, 3)
	for i := range plate {
		plate[i] = letters[rand.Intn(len(letters))]
	}
	return fmt.Sprintf("%s%04d", plate, rand.Intn(10000))
}

func createVehicle(apiURL string) (string, error) {
	entry := catalogue[rand.Intn(len(catalogue))]
	model := entry.Models[rand.Intn(len(entry.Models))]
	year := 2012 + rand.Intn(13)

	resp, err := authorizedRequest(http.MethodPost, apiURL+"/vehicles", models.CreateVehicleRequest{
		Brand: entry.Brand,
		Model: model,
		Plate: randomPlate(),
		Year:  &year,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create vehicle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("vehicle creation failed with status: %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	vehicleID, ok := result["id"].(string)
	if !ok {
		return "", fmt.Errorf("invalid vehicle ID in response")
	}

	log.WithFields(log.Fields{
		"vehicle_id": vehicleID,
		"brand":      entry.Brand,
		"model":      model,
	}).Info("Created vehicle")

	return vehicleID, nil
}

func createWorkOrder(apiURL, vehicleID string) (string, error) {
	service := services[rand.Intn(len(services))]
	cost := service.Cost

	resp, err := authorizedRequest(http.MethodPost, apiURL+"/workorders", models.CreateWorkOrderRequest{
		VehicleID:   vehicleID,
		Description: service.Description,
		TotalCost:   &cost,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create work order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("work order creation failed with status: %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	orderID, ok := result["id"].(string)
	if !ok {
		return "", fmt.Errorf("invalid work order ID in response")
	}
	return orderID, nil
}

func advanceStatus(apiURL, orderID string, status models.WorkOrderStatus) error {
	resp, err := authorizedRequest(http.MethodPut, apiURL+"/workorders/"+orderID+"/status", models.UpdateStatusRequest{
		Status: status,
	})
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status update failed with status: %d", resp.StatusCode)
	}
	return nil
}

func main() {
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	vehicleCount := 8
	if val := os.Getenv("SEED_VEHICLES"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			vehicleCount = n
		}
	}

	username := os.Getenv("SEED_USERNAME")
	if username == "" {
		username = "seeder"
	}
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "Seeder123!"
	}

	log.WithFields(log.Fields{
		"api_url":  apiURL,
		"vehicles": vehicleCount,
	}).Info("Seeding workshop data")

	token, err := ensureAccount(apiURL, username, username+"@taller.local", password)
	if err != nil {
		log.WithError(err).Fatal("Failed to obtain auth token. Ensure the API is reachable.")
	}
	authToken = token

	created := 0
	for i := 0; i < vehicleCount; i++ {
		vehicleID, err := createVehicle(apiURL)
		if err != nil {
			log.WithError(err).Error("Failed to create vehicle")
			continue
		}
		created++

		orderCount := 1 + rand.Intn(3)
		for j := 0; j < orderCount; j++ {
			orderID, err := createWorkOrder(apiURL, vehicleID)
			if err != nil {
				log.WithError(err).Error("Failed to create work order")
				continue
			}

			// Leave roughly a third pending, start the rest, and
			// complete half of the started ones.
			switch rand.Intn(3) {
			case 1:
				err = advanceStatus(apiURL, orderID, models.StatusInProgress)
			case 2:
				if err = advanceStatus(apiURL, orderID, models.StatusInProgress); err == nil {
					err = advanceStatus(apiURL, orderID, models.StatusCompleted)
				}
			}
			if err != nil {
				log.WithError(err).Error("Failed to advance work order status")
			}
		}
	}

	log.WithField("created_vehicles", created).Info("Seeding completed")
	if created == 0 {
		os.Exit(1)
	}
}
