package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"multisig-vault/internal/adapter/http/dto"
	"multisig-vault/internal/adapter/http/middleware"
	"multisig-vault/internal/core/domain"
	"multisig-vault/internal/core/ports"
	"multisig-vault/internal/core/ports/mocks"
	"multisig-vault/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Vault Handler Tests ---

func TestCreateVault_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault, nil, nil)

	vaultID := uuid.New()
	mockVault.EXPECT().Initialize(gomock.Any(), ports.InitializeRequest{
		Owners:    []domain.Owner{"alice", "bob", "carol"},
		Threshold: 2,
	}).Return(&domain.Vault{
		ID:        vaultID,
		Owners:    []domain.Owner{"alice", "bob", "carol"},
		Threshold: 2,
		CreatedAt: time.Now(),
	}, nil)

	body, _ := json.Marshal(dto.CreateVaultRequest{
		Owners:    []string{"alice", "bob", "carol"},
		Threshold: 2,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/vaults", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, vaultID.String(), data["id"])
	assert.Equal(t, float64(2), data["threshold"])
}

func TestCreateVault_BindingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewVaultHandler(mocks.NewMockVaultService(ctrl), nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVault_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault, nil, nil)

	mockVault.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidThreshold())

	body, _ := json.Marshal(dto.CreateVaultRequest{
		Owners:    []string{"alice"},
		Threshold: 2,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OWN_006", resp["error_code"])
}

func TestGetVault_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewVaultHandler(mocks.NewMockVaultService(ctrl), nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBalances_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVault := mocks.NewMockVaultService(ctrl)
	h := NewVaultHandler(mockVault, nil, nil)

	vaultID := uuid.New()
	mockVault.EXPECT().Balances(gomock.Any(), vaultID).Return(&ports.VaultBalances{
		Tracked:   70,
		Actual:    100,
		Untracked: 30,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}

	h.Balances(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(30), data["untracked"])
}

func TestAddOwner_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMembership := mocks.NewMockMembershipService(ctrl)
	h := NewVaultHandler(nil, mockMembership, nil)

	vaultID := uuid.New()
	mockMembership.EXPECT().
		AddOwner(gomock.Any(), vaultID, domain.Owner("alice"), domain.Owner("dave")).
		Return(nil)

	body, _ := json.Marshal(dto.AddOwnerRequest{Identity: "dave"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}
	c.Set(middleware.CtxOwner, domain.Owner("alice"))

	h.AddOwner(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAddOwner_MissingIdentityInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewVaultHandler(nil, mocks.NewMockMembershipService(ctrl), nil)

	vaultID := uuid.New()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}

	h.AddOwner(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRemoveOwner_ThresholdViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMembership := mocks.NewMockMembershipService(ctrl)
	h := NewVaultHandler(nil, mockMembership, nil)

	vaultID := uuid.New()
	mockMembership.EXPECT().
		RemoveOwner(gomock.Any(), vaultID, domain.Owner("alice"), domain.Owner("bob")).
		Return(apperror.ErrThresholdViolation())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	c.Params = gin.Params{
		{Key: "id", Value: vaultID.String()},
		{Key: "identity", Value: "bob"},
	}
	c.Set(middleware.CtxOwner, domain.Owner("alice"))

	h.RemoveOwner(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTreasury := mocks.NewMockTreasuryService(ctrl)
	h := NewVaultHandler(nil, nil, mockTreasury)

	vaultID := uuid.New()
	mockTreasury.EXPECT().Deposit(gomock.Any(), vaultID, int64(500)).Return(&domain.Vault{
		ID:             vaultID,
		TrackedBalance: 500,
	}, nil)

	body, _ := json.Marshal(dto.DepositRequest{Amount: 500})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}

	h.Deposit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(500), data["tracked_balance"])
}

func TestDeposit_ZeroAmountRejectedAtBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewVaultHandler(nil, nil, mocks.NewMockTreasuryService(ctrl))

	vaultID := uuid.New()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"amount":0}`)))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}

	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSync_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTreasury := mocks.NewMockTreasuryService(ctrl)
	h := NewVaultHandler(nil, nil, mockTreasury)

	vaultID := uuid.New()
	mockTreasury.EXPECT().SyncForcedDeposits(gomock.Any(), vaultID).Return(&ports.SyncResult{
		Reconciled:         true,
		Amount:             30,
		ForcedDepositCount: 1,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}

	h.Sync(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["reconciled"])
	assert.Equal(t, float64(30), data["amount"])
}

// --- Proposal Handler Tests ---

func TestSubmitProposal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProposal := mocks.NewMockProposalService(ctrl)
	h := NewProposalHandler(mockProposal, nil)

	vaultID := uuid.New()
	payload := `{"memo":"rent"}`
	mockProposal.EXPECT().Submit(gomock.Any(), ports.SubmitRequest{
		VaultID:     vaultID,
		Caller:      "alice",
		Destination: "dest-1",
		Amount:      400,
		Payload:     []byte(payload),
	}).Return(&domain.Proposal{
		ID:          0,
		VaultID:     vaultID,
		Destination: "dest-1",
		Amount:      400,
		Payload:     []byte(payload),
		Approvals:   []domain.Owner{},
		CreatedAt:   time.Now(),
	}, nil)

	body, _ := json.Marshal(dto.SubmitProposalRequest{
		Destination: "dest-1",
		Amount:      400,
		Payload:     &payload,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: vaultID.String()}}
	c.Set(middleware.CtxOwner, domain.Owner("alice"))

	h.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["id"])
	assert.Equal(t, false, data["executed"])
}

func TestApprove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProposal := mocks.NewMockProposalService(ctrl)
	h := NewProposalHandler(mockProposal, nil)

	vaultID := uuid.New()
	mockProposal.EXPECT().Approve(gomock.Any(), vaultID, domain.Owner("bob"), int64(2)).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{
		{Key: "id", Value: vaultID.String()},
		{Key: "pid", Value: "2"},
	}
	c.Set(middleware.CtxOwner, domain.Owner("bob"))

	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApprove_InvalidProposalID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewProposalHandler(mocks.NewMockProposalService(ctrl), nil)

	vaultID := uuid.New()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{
		{Key: "id", Value: vaultID.String()},
		{Key: "pid", Value: "-3"},
	}
	c.Set(middleware.CtxOwner, domain.Owner("bob"))

	h.Approve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecute_Executed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecution := mocks.NewMockExecutionService(ctrl)
	h := NewProposalHandler(nil, mockExecution)

	vaultID := uuid.New()
	mockExecution.EXPECT().Execute(gomock.Any(), vaultID, domain.Owner("alice"), int64(0)).Return(&ports.ExecutionResult{
		ProposalID:  0,
		Outcome:     ports.OutcomeExecuted,
		Destination: "dest-1",
		Amount:      400,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{
		{Key: "id", Value: vaultID.String()},
		{Key: "pid", Value: "0"},
	}
	c.Set(middleware.CtxOwner, domain.Owner("alice"))

	h.Execute(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "EXECUTED", data["outcome"])
}

func TestExecute_FailedOutcomeIsStill200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecution := mocks.NewMockExecutionService(ctrl)
	h := NewProposalHandler(nil, mockExecution)

	vaultID := uuid.New()
	mockExecution.EXPECT().Execute(gomock.Any(), vaultID, domain.Owner("alice"), int64(0)).Return(&ports.ExecutionResult{
		ProposalID:  0,
		Outcome:     ports.OutcomeFailed,
		Destination: "dest-1",
		Amount:      400,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{
		{Key: "id", Value: vaultID.String()},
		{Key: "pid", Value: "0"},
	}
	c.Set(middleware.CtxOwner, domain.Owner("alice"))

	h.Execute(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "FAILED", data["outcome"])
}

func TestExecute_InsufficientApprovals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecution := mocks.NewMockExecutionService(ctrl)
	h := NewProposalHandler(nil, mockExecution)

	vaultID := uuid.New()
	mockExecution.EXPECT().Execute(gomock.Any(), vaultID, domain.Owner("alice"), int64(0)).
		Return(nil, apperror.ErrInsufficientApprovals())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{
		{Key: "id", Value: vaultID.String()},
		{Key: "pid", Value: "0"},
	}
	c.Set(middleware.CtxOwner, domain.Owner("alice"))

	h.Execute(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EXEC_001", resp["error_code"])
}

// --- Auth Handler Tests ---

func TestIssueToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockToken := mocks.NewMockTokenService(ctrl)
	h := NewAuthHandler(mockToken)

	expiry := time.Now().Add(24 * time.Hour)
	mockToken.EXPECT().Generate(domain.Owner("alice")).Return("jwt-token-123", expiry, nil)

	body, _ := json.Marshal(dto.TokenRequest{Identity: "alice"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.IssueToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token-123", data["token"])
}

func TestIssueToken_InvalidIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockTokenService(ctrl))

	// Identity with characters outside the safe_id set.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{"identity":"<script>"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.IssueToken(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}
