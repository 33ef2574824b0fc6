// Package seed holds the static fixtures the service boots from. Mutations at
// runtime never persist back here; a restart always returns to this state.
package seed

import (
	"time"

	"github.com/alertlink/internal/model"
)

// CurrentUserID identifies the profile the session user is mapped onto.
const CurrentUserID = "currentUser"

const placeholderAvatar = "https://placehold.co/100x100.png"

// Fixtures is the complete seed state.
type Fixtures struct {
	Users    []model.User
	Chats    []model.Chat
	Messages map[string][]model.Message
	Alerts   []model.BroadcastAlert
}

// Data builds the seed fixtures with timestamps relative to now.
func Data(now time.Time) *Fixtures {
	alice := model.LocalizedString{EN: "Alice (Admin)", SQ: "Alisa (Admin)"}
	bob := model.LocalizedString{EN: "Bob (Responder)", SQ: "Bobi (Reagues)"}
	charlie := model.LocalizedString{EN: "Charlie (Responder)", SQ: "Karli (Reagues)"}
	diana := model.LocalizedString{EN: "Diana (Observer)", SQ: "Diana (Vëzhguese)"}
	eva := model.LocalizedString{EN: "Eva (You)", SQ: "Eva (Ti)"}
	systemAlert := model.LocalizedString{EN: "System Alert", SQ: "Njoftim Sistemi"}

	bobLastSeen := now.Add(-time.Hour)
	dianaLastSeen := now.Add(-24 * time.Hour)

	users := []model.User{
		{ID: "user1", Name: alice, Role: model.RoleAdmin, AvatarURL: placeholderAvatar, Status: model.StatusOnline},
		{ID: "user2", Name: bob, Role: model.RoleResponder, AvatarURL: placeholderAvatar, Status: model.StatusOffline, LastSeen: &bobLastSeen},
		{ID: "user3", Name: charlie, Role: model.RoleResponder, AvatarURL: placeholderAvatar, Status: model.StatusOnline},
		{ID: "user4", Name: diana, Role: model.RoleObserver, AvatarURL: placeholderAvatar, Status: model.StatusOffline, LastSeen: &dianaLastSeen},
		{ID: CurrentUserID, Name: eva, Role: model.RoleResponder, AvatarURL: placeholderAvatar, Status: model.StatusOnline},
	}

	byID := make(map[string]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	opsTeam := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.Role != model.RoleObserver {
			opsTeam = append(opsTeam, u)
		}
	}

	chats := []model.Chat{
		{
			ID:           "chat1",
			Name:         model.LocalizedString{EN: "Emergency Ops Team", SQ: "Ekipi i Operacioneve Emergjente"},
			Type:         model.ChatTypeGroup,
			Participants: opsTeam,
			Admins:       []string{"user1"},
			LastMessage:  &model.LastMessage{Content: "Stand by for updates.", Timestamp: now, SenderName: alice},
			UnreadCount:  2,
			AvatarURL:    placeholderAvatar,
			IsEncrypted:  true,
		},
		{
			ID:           "chat2",
			Name:         bob,
			Type:         model.ChatTypeDirect,
			Participants: []model.User{byID["user2"], byID[CurrentUserID]},
			LastMessage:  &model.LastMessage{Content: "On my way to sector 5.", Timestamp: now.Add(-5 * time.Minute), SenderName: bob},
			AvatarURL:    byID["user2"].AvatarURL,
			IsEncrypted:  true,
		},
		{
			ID:           "chat3",
			Name:         model.LocalizedString{EN: "City Wide Alerts", SQ: "Njoftime për Gjithë Qytetin"},
			Type:         model.ChatTypeBroadcast,
			Participants: users,
			Admins:       []string{"user1"},
			LastMessage:  &model.LastMessage{Content: "Weather advisory issued.", Timestamp: now.Add(-30 * time.Minute), SenderName: systemAlert},
			AvatarURL:    placeholderAvatar,
		},
	}

	messages := map[string][]model.Message{
		"chat1": {
			{ID: "msg1-1", ChatID: "chat1", SenderID: "user1", SenderName: alice, Content: "Team, situation report for Zone A needed ASAP.", Timestamp: now.Add(-10 * time.Minute), Type: model.MessageTypeText, Status: model.MessageStatusRead},
			{ID: "msg1-2", ChatID: "chat1", SenderID: CurrentUserID, SenderName: eva, Content: "Acknowledged. Zone A is stable, minor flooding.", Timestamp: now.Add(-8 * time.Minute), Type: model.MessageTypeText, Status: model.MessageStatusDelivered},
			{ID: "msg1-3", ChatID: "chat1", SenderID: "user3", SenderName: charlie, Content: "Sharing images from Zone A now.", Timestamp: now.Add(-7 * time.Minute), Type: model.MessageTypeText, Status: model.MessageStatusRead},
			{ID: "msg1-4", ChatID: "chat1", SenderID: "user3", SenderName: charlie, Content: "Flooding_ZoneA.jpg", Timestamp: now.Add(-6 * time.Minute), Type: model.MessageTypeFile, FileName: "Flooding_ZoneA.jpg", FileURL: "#", Status: model.MessageStatusRead},
			{ID: "msg1-5", ChatID: "chat1", SenderID: "user1", SenderName: alice, Content: "Voice Message (0:23)", Timestamp: now.Add(-5 * time.Minute), Type: model.MessageTypeVoice, Status: model.MessageStatusRead},
			{ID: "msg1-6", ChatID: "chat1", SenderID: CurrentUserID, SenderName: eva, Content: "Voice Message (0:41)", Timestamp: now.Add(-4 * time.Minute), Type: model.MessageTypeVoice, Status: model.MessageStatusDelivered},
			{ID: "msg1-7", ChatID: "chat1", SenderID: "user1", SenderName: alice, Content: "Thanks Charlie. Bob, any updates from Sector 5?", Timestamp: now, Type: model.MessageTypeText, Status: model.MessageStatusSent},
		},
		"chat2": {
			{ID: "msg2-1", ChatID: "chat2", SenderID: "user2", SenderName: bob, Content: "On my way to sector 5.", Timestamp: now.Add(-5 * time.Minute), Type: model.MessageTypeText, Status: model.MessageStatusRead},
			{ID: "msg2-2", ChatID: "chat2", SenderID: CurrentUserID, SenderName: eva, Content: "Roger that. Keep us posted.", Timestamp: now.Add(-4 * time.Minute), Type: model.MessageTypeText, Status: model.MessageStatusDelivered},
			{ID: "msg2-3", ChatID: "chat2", SenderID: "user2", SenderName: bob, Content: "My current location.", Timestamp: now.Add(-2 * time.Minute), Type: model.MessageTypeLocation, Location: &model.Location{Lat: 34.0522, Lng: -118.2437, Address: "Sector 5 Command Post"}, Status: model.MessageStatusRead},
		},
		"chat3": {
			{ID: "msg3-1", ChatID: "chat3", SenderID: "user1", SenderName: systemAlert, Content: "Weather advisory: Heavy rain expected in the next 2 hours. Please take necessary precautions.", Timestamp: now.Add(-30 * time.Minute), Type: model.MessageTypeAlert, Status: model.MessageStatusDelivered},
			{ID: "msg3-2", ChatID: "chat3", SenderID: "user1", SenderName: systemAlert, Content: "Power outage reported in downtown area. Crews are being dispatched.", Timestamp: now.Add(-15 * time.Minute), Type: model.MessageTypeAlert, Status: model.MessageStatusSent},
		},
	}

	alerts := []model.BroadcastAlert{
		{
			ID:          "alert1",
			Title:       "Immediate Evacuation Order: Downtown Area",
			Content:     "A critical incident has occurred. All personnel and civilians in the downtown area are ordered to evacuate immediately. Follow designated routes.",
			Priority:    model.PriorityCritical,
			Timestamp:   now,
			SenderID:    "user1",
			SenderName:  alice,
			TargetRoles: []model.UserRole{model.RoleAdmin, model.RoleResponder, model.RoleObserver},
		},
		{
			ID:          "alert2",
			Title:       "Road Closure: Main Street",
			Content:     "Main Street is closed between 1st Ave and 5th Ave due to emergency operations. Use alternate routes.",
			Priority:    model.PriorityHigh,
			Timestamp:   now.Add(-2 * time.Hour),
			SenderID:    "user1",
			SenderName:  alice,
			TargetRoles: []model.UserRole{model.RoleAdmin, model.RoleResponder},
		},
	}

	return &Fixtures{Users: users, Chats: chats, Messages: messages, Alerts: alerts}
}
