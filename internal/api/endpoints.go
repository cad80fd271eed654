package api

// Endpoints is the static registry mapping symbolic operation names to full
// request URLs. Every URL is the configured backend origin plus a fixed path
// suffix; there is no templating or versioning beyond the origin
// substitution.
type Endpoints struct {
	origin string
}

// NewEndpoints creates a registry for the given backend origin. The origin
// must not end with a slash.
func NewEndpoints(origin string) *Endpoints {
	return &Endpoints{origin: origin}
}

// Auth

func (e *Endpoints) Register() string { return e.origin + "/api/users/register" }
func (e *Endpoints) Login() string    { return e.origin + "/api/users/login" }

// Dashboard

func (e *Endpoints) DashboardCounts() string { return e.origin + "/api/dashboard/counts" }

// Chat

func (e *Endpoints) UserChats(userID string) string { return e.origin + "/api/chat/user/" + userID }
func (e *Endpoints) ChatMessages(chatID string) string {
	return e.origin + "/api/chat/" + chatID + "/messages"
}
func (e *Endpoints) SendMessage() string  { return e.origin + "/api/chat/message" }
func (e *Endpoints) InitiateChat() string { return e.origin + "/api/chat/initiate" }

// Users and profile

func (e *Endpoints) Users() string                 { return e.origin + "/api/users/get" }
func (e *Endpoints) User(id string) string         { return e.origin + "/api/users/get/" + id }
func (e *Endpoints) Me() string                    { return e.origin + "/api/users/me" }
func (e *Endpoints) ProfileCard() string           { return e.origin + "/api/profile/card" }
func (e *Endpoints) BusinessProfile() string       { return e.origin + "/api/profile/business" }
func (e *Endpoints) NewUsers() string              { return e.origin + "/api/users/get-new" }
func (e *Endpoints) MatrimonialRequests() string   { return e.origin + "/api/users/get-new-user" }
func (e *Endpoints) ApprovedUsersFilter() string   { return e.origin + "/api/users/approved-users/filter" }
func (e *Endpoints) ApproveUser(id string) string  { return e.origin + "/api/users/approve/" + id }
func (e *Endpoints) MatrimonialAccess(id string) string {
	return e.origin + "/api/users/matrimonial-access/" + id
}
func (e *Endpoints) BanUser(id string) string   { return e.origin + "/api/users/ban/" + id }
func (e *Endpoints) UnbanUser(id string) string { return e.origin + "/api/users/unban/" + id }

// Fee defaulters. The backend spells the path segment "deafulter".

func (e *Endpoints) DefaulterRequest(id string) string {
	return e.origin + "/api/deafulter/payments/request/" + id
}
func (e *Endpoints) DefaulterToggle(id string) string {
	return e.origin + "/api/deafulter/payments/toggle/" + id
}
func (e *Endpoints) DefaulterApprove(id string) string {
	return e.origin + "/api/deafulter/payments/approve/" + id
}

// Posts

func (e *Endpoints) PostFeed() string          { return e.origin + "/api/posts/feed" }
func (e *Endpoints) PostsByStatus() string     { return e.origin + "/api/posts/feed/get-by-status" }
func (e *Endpoints) Post(id string) string     { return e.origin + "/api/posts/feed/get-by-id/" + id }
func (e *Endpoints) UpdatePostStatus(id string) string {
	return e.origin + "/api/posts/feed/" + id + "/update-status"
}

// Products

func (e *Endpoints) AddProduct() string           { return e.origin + "/api/product/add" }
func (e *Endpoints) Product(id string) string     { return e.origin + "/api/product/get/" + id }
func (e *Endpoints) AdminProducts() string        { return e.origin + "/api/product/products" }
func (e *Endpoints) ApprovedProductsByUser(userID string) string {
	return e.origin + "/api/product/approved/by-user/" + userID
}
func (e *Endpoints) UpdateProduct(id string) string  { return e.origin + "/api/product/update/" + id }
func (e *Endpoints) ApproveProduct(id string) string { return e.origin + "/api/product/approve/" + id }
func (e *Endpoints) RejectProduct(id string) string  { return e.origin + "/api/product/reject/" + id }

// Referrals

func (e *Endpoints) SendReferral() string      { return e.origin + "/api/referal/send" }
func (e *Endpoints) ReceivedReferrals() string { return e.origin + "/api/referal/received" }
func (e *Endpoints) AcceptReferral() string    { return e.origin + "/api/referal/accept" }
func (e *Endpoints) GivePoints() string        { return e.origin + "/api/referal/give-points" }

// Events

func (e *Endpoints) UpcomingEvents() string  { return e.origin + "/api/events/upcoming" }
func (e *Endpoints) CompletedEvents() string { return e.origin + "/api/events/completed" }
func (e *Endpoints) Event(id string) string  { return e.origin + "/api/events/get-by-id/" + id }
func (e *Endpoints) RegisterEvent() string   { return e.origin + "/api/events/register" }
func (e *Endpoints) CreateEvent() string     { return e.origin + "/api/events/create" }
func (e *Endpoints) Events() string          { return e.origin + "/api/events/" }
func (e *Endpoints) EventRegistrations(id string) string {
	return e.origin + "/api/events/" + id + "/registrations"
}
func (e *Endpoints) VerifyEventRegistration(id string) string {
	return e.origin + "/api/events/verify/" + id
}
func (e *Endpoints) DeleteEvent(id string) string { return e.origin + "/api/events/delete/" + id }
