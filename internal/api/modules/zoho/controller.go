package zoho_module

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/unionscout/unionscout/internal/stores/lead"
	"github.com/unionscout/unionscout/pkg/sdk"
)

// syncRequest is the request body for a lead sync. Either an explicit
// batch of lead ids (already-synced leads excluded by the caller) or a
// union id, which syncs every lead of that union without a CRM id yet.
type syncRequest struct {
	LeadIDs []string `json:"lead_ids"`
	UnionID string   `json:"union_id"`
}

// InitiateAuth handles GET requests to begin the OAuth handshake by
// redirecting to the provider's consent screen
func InitiateAuth(c *gin.Context) {
	url, err := GetClient().AuthCodeURL()
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(sdk.NewErrorResponse(status, msg, err.Error()).AsGinResponse())
		return
	}

	c.Redirect(http.StatusFound, url)
}

// HandleCallback handles the provider redirect carrying the
// authorization code, exchanging it for the initial token pair
func HandleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Authorization code not received from Zoho", nil).AsGinResponse())
		return
	}

	if err := GetClient().ExchangeCode(c.Request.Context(), code); err != nil {
		status, msg := statusForError(err)
		c.JSON(sdk.NewErrorResponse(status, msg, err.Error()).AsGinResponse())
		return
	}

	c.String(http.StatusOK, "Successfully connected to Zoho CRM! You can close this window or navigate back.")
}

// SyncLeads handles POST requests to submit a batch of leads to the CRM
// and write CRM ids back onto the local records
func SyncLeads(c *gin.Context) {
	var req syncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err.Error()).AsGinResponse())
		return
	}

	var leads []lead.Lead
	switch {
	case len(req.LeadIDs) > 0:
		ids := make([]uuid.UUID, 0, len(req.LeadIDs))
		for _, raw := range req.LeadIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid lead id: "+raw, nil).AsGinResponse())
				return
			}
			ids = append(ids, id)
		}

		found, err := GetLeadStore().GetLeadsByIDs(c.Request.Context(), ids)
		if err != nil {
			c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to load leads", err.Error()).AsGinResponse())
			return
		}
		leads = found

	case req.UnionID != "":
		unionID, err := uuid.Parse(req.UnionID)
		if err != nil {
			c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid union id", nil).AsGinResponse())
			return
		}

		found, err := GetLeadStore().ListUnsynced(c.Request.Context(), unionID)
		if err != nil {
			c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to load leads", err.Error()).AsGinResponse())
			return
		}
		leads = found

	default:
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "No leads provided for sync", nil).AsGinResponse())
		return
	}

	if len(leads) == 0 {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "No leads provided for sync", nil).AsGinResponse())
		return
	}

	report, err := GetClient().SyncLeads(c.Request.Context(), leads)
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(sdk.NewErrorResponse(status, msg, err.Error()).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Leads sync attempt completed", report).AsGinResponse())
}

// GetStats handles GET requests for lead statistics from the CRM
func GetStats(c *gin.Context) {
	stats, err := GetClient().Stats(c.Request.Context())
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(sdk.NewErrorResponse(status, msg, err.Error()).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Zoho statistics retrieved successfully", stats).AsGinResponse())
}

// GetTokens handles GET requests for the CRM connection status. Token
// values are never included in the response.
func GetTokens(c *gin.Context) {
	cred, err := GetClient().ConnectionStatus()
	if err != nil {
		status, msg := statusForError(err)
		c.JSON(sdk.NewErrorResponse(status, msg, err.Error()).AsGinResponse())
		return
	}

	if cred == nil {
		c.JSON(sdk.NewSuccessResponse("Zoho connection status", sdk.ConnectionStatus{Connected: false}).AsGinResponse())
		return
	}

	data := sdk.ConnectionStatus{
		Connected: true,
		UserID:    cred.UserID,
		ExpiresAt: cred.AccessTokenExpiresAt.Format(time.RFC3339),
		UpdatedAt: cred.UpdatedAt.Format(time.RFC3339),
	}
	c.JSON(sdk.NewSuccessResponse("Zoho connection status", data).AsGinResponse())
}
