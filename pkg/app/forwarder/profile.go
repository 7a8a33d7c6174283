package forwarder

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/kuokgroup/automation-bridge/pkg/config"
)

const (
	WorkatoTarget = "workato"
	UiPathTarget  = "uipath"

	CallWorkatoEndpoint     = "callWorkato"
	GetAllFoldersEndpoint   = "getAllFolders"
	CreateNewFolderEndpoint = "createNewFolder"

	odataContentType = "application/json;odata.metadata=minimal;odata.streaming=true"
)

// ErrorMode selects how a failure is turned into a caller response.
type ErrorMode int

const (
	// GranularErrors reports each outbound failure kind with its own prefix.
	GranularErrors ErrorMode = iota
	// CollapsedErrors reports every outbound failure under one message.
	CollapsedErrors
)

// Envelope selects how a successful outbound body is relayed.
type Envelope int

const (
	// RelayJSON returns the outbound JSON body unchanged.
	RelayJSON Envelope = iota
	// TextSummary embeds the outbound JSON in a plain-text sentence.
	TextSummary
)

// BodyBuilder produces the outbound payload from the validated inbound
// message. A nil BodyBuilder sends no body.
type BodyBuilder func(message string) ([]byte, error)

// Profile is the fixed description of one forwarding endpoint.
type Profile struct {
	Name           string
	Target         string
	Method         string
	URL            string
	Header         http.Header
	RequireMessage bool
	Body           BodyBuilder
	Envelope       Envelope
	ErrorMode      ErrorMode
}

type messagePayload struct {
	Message string `json:"Message"`
}

// WorkatoProfile relays the inbound Message to the automation recipe.
func WorkatoProfile(cfg config.WorkatoConfig) Profile {
	header := make(http.Header)
	header.Set("api-token", cfg.APIToken)
	header.Set("Content-Type", "application/json")

	return Profile{
		Name:           CallWorkatoEndpoint,
		Target:         WorkatoTarget,
		Method:         http.MethodPost,
		URL:            cfg.URL,
		Header:         header,
		RequireMessage: true,
		Body: func(message string) ([]byte, error) {
			return json.Marshal(messagePayload{Message: message})
		},
		Envelope:  RelayJSON,
		ErrorMode: GranularErrors,
	}
}

// ListFoldersProfile lists the orchestrator folders.
func ListFoldersProfile(cfg config.UiPathConfig) Profile {
	return Profile{
		Name:      GetAllFoldersEndpoint,
		Target:    UiPathTarget,
		Method:    http.MethodGet,
		URL:       cfg.FoldersURL,
		Header:    orchestratorHeader(cfg.APIToken),
		Envelope:  TextSummary,
		ErrorMode: CollapsedErrors,
	}
}

// CreateFolderProfile creates an orchestrator folder. The inbound Message
// is required but the outbound payload is always DefaultFolderTemplate.
func CreateFolderProfile(cfg config.UiPathConfig) (Profile, error) {
	template, err := json.Marshal(DefaultFolderTemplate())
	if err != nil {
		return Profile{}, fmt.Errorf("failed to encode folder template: %w", err)
	}

	header := orchestratorHeader(cfg.APIToken)
	header.Set("Content-Type", odataContentType)

	return Profile{
		Name:           CreateNewFolderEndpoint,
		Target:         UiPathTarget,
		Method:         http.MethodPost,
		URL:            cfg.FoldersURL,
		Header:         header,
		RequireMessage: true,
		Body: func(string) ([]byte, error) {
			return template, nil
		},
		Envelope:  TextSummary,
		ErrorMode: CollapsedErrors,
	}, nil
}

func orchestratorHeader(token string) http.Header {
	header := make(http.Header)
	header.Set("accept", "application/json")
	header.Set("authorization", "Bearer "+token)
	return header
}

// placeholderFolderKey is the example GUID the template uses for both the
// folder key and its parent key.
const placeholderFolderKey = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

// FolderTemplate mirrors the orchestrator Folder entity.
type FolderTemplate struct {
	Key                uuid.UUID `json:"Key"`
	DisplayName        string    `json:"DisplayName"`
	FullyQualifiedName string    `json:"FullyQualifiedName"`
	Description        string    `json:"Description"`
	FolderType         string    `json:"FolderType"`
	ProvisionType      string    `json:"ProvisionType"`
	PermissionModel    string    `json:"PermissionModel"`
	ParentID           int64     `json:"ParentId"`
	ParentKey          uuid.UUID `json:"ParentKey"`
	FeedType           string    `json:"FeedType"`
	ID                 int64     `json:"Id"`
}

func DefaultFolderTemplate() FolderTemplate {
	key := uuid.MustParse(placeholderFolderKey)
	return FolderTemplate{
		Key:                key,
		DisplayName:        "string",
		FullyQualifiedName: "string",
		Description:        "string",
		FolderType:         "Standard",
		ProvisionType:      "Manual",
		PermissionModel:    "InheritFromTenant",
		ParentID:           0,
		ParentKey:          key,
		FeedType:           "Undefined",
		ID:                 0,
	}
}
