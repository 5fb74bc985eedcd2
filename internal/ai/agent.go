package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// RunAgent answers a manager's question against live store state. The model
// gets read tools plus one write tool (recording a rent payment); everything
// goes through the same store operations as the HTTP handlers.
func RunAgent(st *store.Store, userMessage string, apiKey string) (string, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	today := time.Now().Format("2006-01-02")

	systemPrompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the assistant for a paying-guest accommodation manager.

	RULES:
	1. OCCUPANCY: For questions about free/occupied rooms or totals, call 'get_overview' for the numbers and 'list_rooms' for per-room detail.
	2. TENANTS: For questions about a tenant (rent, room, phone), call 'list_tenants' and read the JSON. Do NOT ask for IDs the list already gives you.
	3. PAYMENTS: If the manager says a tenant has paid, find the payment via 'list_tenants' and then call 'mark_payment_paid' with its ID.

	USER: %s`, today, userMessage)

	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "get_overview",
					Description: "Get the dashboard snapshot: total/occupied/vacant rooms plus collected and pending rent totals.",
				},
				{
					Name:        "list_rooms",
					Description: "Get every room with its number, bed count, status and current tenants.",
				},
				{
					Name:        "list_tenants",
					Description: "Get every tenant with their room, rent amount, active flag and payment records.",
				},
				{
					Name:        "mark_payment_paid",
					Description: "Record a payment as PAID as of today using its payment ID",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"payment_id": {Type: genai.TypeInteger, Description: "ID of the payment"},
						},
						Required: []string{"payment_id"},
					},
				},
			},
		},
	}

	session := model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(systemPrompt))
	if err != nil {
		return "", err
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			switch funcCall.Name {
			case "get_overview":
				return executeOverview(ctx, st, session)
			case "list_rooms":
				return executeListRooms(ctx, st, session)
			case "list_tenants":
				return executeListTenants(ctx, st, session)
			case "mark_payment_paid":
				return executeMarkPaid(ctx, st, session, funcCall), nil
			}
		}
	}

	return printResponse(resp), nil
}

// --- TOOL EXECUTORS ---

func executeOverview(ctx context.Context, st *store.Store, session *genai.ChatSession) (string, error) {
	overview, err := st.Overview()
	if err != nil {
		return "", err
	}
	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name: "get_overview",
		Response: map[string]interface{}{
			"total_rooms":     overview.TotalRooms,
			"occupied_rooms":  overview.OccupiedRooms,
			"vacant_rooms":    overview.VacantRooms,
			"total_collected": overview.TotalCollected,
			"total_pending":   overview.TotalPending,
		},
	})
	if err != nil {
		return "", err
	}
	return printResponse(finalResp), nil
}

func executeListRooms(ctx context.Context, st *store.Store, session *genai.ChatSession) (string, error) {
	rooms, err := st.ListRooms()
	if err != nil {
		return "", err
	}

	type simpleRoom struct {
		ID      uint   `json:"id"`
		Number  string `json:"number"`
		Beds    int    `json:"beds"`
		Status  string `json:"status"`
		Tenants int    `json:"tenant_count"`
	}
	var simpleList []simpleRoom
	for _, r := range rooms {
		simpleList = append(simpleList, simpleRoom{
			ID:      r.ID,
			Number:  r.RoomNumber,
			Beds:    r.BedCount,
			Status:  r.Status,
			Tenants: len(r.Tenants),
		})
	}
	jsonBytes, _ := json.Marshal(simpleList)

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "list_rooms",
		Response: map[string]interface{}{"rooms": string(jsonBytes)},
	})
	if err != nil {
		return "", err
	}
	return printResponse(finalResp), nil
}

func executeListTenants(ctx context.Context, st *store.Store, session *genai.ChatSession) (string, error) {
	tenants, err := st.ListTenants()
	if err != nil {
		return "", err
	}

	type simplePayment struct {
		ID     uint    `json:"id"`
		Month  int     `json:"month"`
		Year   int     `json:"year"`
		Amount float64 `json:"amount"`
		Status string  `json:"status"`
	}
	type simpleTenant struct {
		ID       uint            `json:"id"`
		Name     string          `json:"name"`
		Room     string          `json:"room"`
		Rent     float64         `json:"rent"`
		Active   bool            `json:"active"`
		Payments []simplePayment `json:"payments"`
	}
	var simpleList []simpleTenant
	for _, t := range tenants {
		item := simpleTenant{
			ID:     t.ID,
			Name:   t.Name,
			Rent:   t.RentAmount,
			Active: t.IsActive,
		}
		if t.Room != nil {
			item.Room = t.Room.RoomNumber
		}
		for _, p := range t.Payments {
			item.Payments = append(item.Payments, simplePayment{
				ID: p.ID, Month: p.Month, Year: p.Year, Amount: p.Amount, Status: p.Status,
			})
		}
		simpleList = append(simpleList, item)
	}
	jsonBytes, _ := json.Marshal(simpleList)

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "list_tenants",
		Response: map[string]interface{}{"tenants": string(jsonBytes)},
	})
	if err != nil {
		return "", err
	}
	return printResponse(finalResp), nil
}

func executeMarkPaid(ctx context.Context, st *store.Store, session *genai.ChatSession, funcCall genai.FunctionCall) string {
	paymentID := uint(funcCall.Args["payment_id"].(float64))

	now := time.Now()
	status := models.PaymentPaid
	_, err := st.UpdatePayment(paymentID, store.PaymentUpdate{
		Status:   &status,
		PaidDate: &now,
	})

	msg := "Success"
	if err != nil {
		msg = err.Error()
	}

	finalResp, _ := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "mark_payment_paid",
		Response: map[string]interface{}{"status": msg, "payment_id": paymentID},
	})
	return printResponse(finalResp)
}

func printResponse(resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "I completed the action."
}
