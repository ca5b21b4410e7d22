// Package authz is the single authorization policy for the lifecycle engine.
// Every operation consults CanPerform before touching state; route handlers
// never compare role strings themselves.
package authz

type Role string

const (
	RoleApplicant   Role = "applicant"
	RoleUnderwriter Role = "underwriter"
	RoleAdmin       Role = "admin"
)

// Actor is the authenticated identity attached to a request. The engine
// trusts it as already authenticated; role is immutable per request.
type Actor struct {
	ID   string
	Role Role
}

type Action string

const (
	ActionViewApplication         Action = "view_application"
	ActionSubmitApplication       Action = "submit_application"
	ActionCompleteDocuments       Action = "complete_documents"
	ActionUploadDocument          Action = "upload_document"
	ActionTransitionStatus        Action = "transition_status"
	ActionSoftDelete              Action = "soft_delete"
	ActionRequestRestoration      Action = "request_restoration"
	ActionReviewRestoration       Action = "review_restoration"
	ActionHardDelete              Action = "hard_delete"
	ActionRestoreDirect           Action = "restore_direct"
	ActionListAllApplications     Action = "list_all_applications"
	ActionListDeletedApplications Action = "list_deleted_applications"
)

// CanPerform is the whole policy table. Anything not explicitly allowed is
// denied, including unknown roles and unknown actions.
func CanPerform(role Role, actorID, ownerID string, action Action) bool {
	switch action {
	case ActionViewApplication, ActionSubmitApplication, ActionCompleteDocuments:
		switch role {
		case RoleApplicant:
			return actorID != "" && actorID == ownerID
		case RoleUnderwriter, RoleAdmin:
			return true
		}
	case ActionUploadDocument:
		// Only the owning applicant manages uploads.
		return role == RoleApplicant && actorID != "" && actorID == ownerID
	case ActionTransitionStatus:
		return role == RoleUnderwriter || role == RoleAdmin
	case ActionSoftDelete:
		switch role {
		case RoleApplicant:
			return actorID != "" && actorID == ownerID
		case RoleAdmin:
			return true
		}
	case ActionRequestRestoration:
		return role == RoleUnderwriter
	case ActionReviewRestoration, ActionHardDelete, ActionRestoreDirect:
		return role == RoleAdmin
	case ActionListAllApplications, ActionListDeletedApplications:
		return role == RoleUnderwriter || role == RoleAdmin
	}
	return false
}

func (a Actor) Can(action Action, ownerID string) bool {
	return CanPerform(a.Role, a.ID, ownerID, action)
}
