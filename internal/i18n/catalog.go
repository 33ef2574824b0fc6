package i18n

import "github.com/alertlink/internal/model"

// catalog is the full locale → key → string table. Keys are flat; placeholders
// use the {{name}} form.
var catalog = map[model.Locale]map[string]string{
	model.LocaleEN: {
		"greeting":              "Hello",
		"welcome":               "Welcome to AlertLink!",
		"loginTitle":            "Welcome to AlertLink",
		"loginDescription":      "Enter your credentials to access the system",
		"selectRole":            "Select your role",
		"enterOtp":              "Enter OTP",
		"login":                 "Login",
		"loggingIn":             "Logging in...",
		"loginSuccess":          "Login Successful",
		"loginFailed":           "Login Failed",
		"invalidOtp":            "Invalid OTP. Please try again.",
		"invalidRole":           "Unknown role.",
		"welcomeRole":           "Welcome! You are logged in as {{role}}.",
		"demoCredentials":       "Demo: Use OTP 123456",
		"roleAdmin":             "Administrator",
		"roleResponder":         "Responder",
		"roleObserver":          "Observer",
		"loadingUserData":       "Loading user data...",
		"chatNotFound":          "Chat not found or user data unavailable.",
		"chatDeleted":           "Chat deleted",
		"chatDeletedSuccess":    "The conversation has been removed.",
		"messageSent":           "Message sent",
		"broadcastAlerts":       "Broadcast Alerts",
		"filterByPriority":      "Filter by priority",
		"newAlert":              "New Alert",
		"alertSent":             "Alert broadcast",
		"alertSentSuccess":      "Your alert has been sent to the selected roles.",
		"alertValidationFailed": "Title, content and at least one target role are required.",
		"noAlertsMatching":      "No alerts matching your filters.",
		"priorityLow":           "Low",
		"priorityMedium":        "Medium",
		"priorityHigh":          "High",
		"priorityCritical":      "Critical",
		"userManagement":        "User Management",
		"addNewUser":            "Add New User",
		"userAdded":             "User added",
		"userAddedSuccess":      "{{name}} has been added.",
		"userDeleted":           "User deleted",
		"userDeletedSuccess":    "The user has been removed.",
		"userNameRequired":      "A user name is required.",
		"actionDenied":          "Action Denied",
		"cannotDeleteSelf":      "You cannot delete your own account.",
		"accessDenied":          "Access Denied",
		"noPermission":          "You do not have permission to view this page.",
		"unauthorized":          "Please log in to continue.",
		"tooManyRequests":       "Too many requests. Please slow down.",
		"notFoundTitle":         "Page not found",
		"backToDashboard":       "Back to dashboard",
		"loggedOut":             "You have been logged out.",
	},
	model.LocaleSQ: {
		"greeting":              "Përshëndetje",
		"welcome":               "Mirësevini në AlertLink!",
		"loginTitle":            "Mirësevini në AlertLink",
		"loginDescription":      "Shkruani kredencialet tuaja për të hyrë në sistem",
		"selectRole":            "Zgjidhni rolin tuaj",
		"enterOtp":              "Shkruani OTP",
		"login":                 "Hyni",
		"loggingIn":             "Duke u loguar...",
		"loginSuccess":          "Hyrja u krye me sukses",
		"loginFailed":           "Hyrja dështoi",
		"invalidOtp":            "OTP e pavlefshme. Ju lutemi provoni përsëri.",
		"invalidRole":           "Rol i panjohur.",
		"welcomeRole":           "Mirë se vini! Jeni loguar si {{role}}.",
		"demoCredentials":       "Demo: Përdorni OTP 123456",
		"roleAdmin":             "Administrator",
		"roleResponder":         "Përgjigjës",
		"roleObserver":          "Vëzhgues",
		"loadingUserData":       "Duke ngarkuar të dhënat e përdoruesit...",
		"chatNotFound":          "Biseda nuk u gjet ose të dhënat e përdoruesit mungojnë.",
		"chatDeleted":           "Biseda u fshi",
		"chatDeletedSuccess":    "Biseda është hequr.",
		"messageSent":           "Mesazhi u dërgua",
		"broadcastAlerts":       "Njoftime Emergjente",
		"filterByPriority":      "Filtro sipas prioritetit",
		"newAlert":              "Njoftim i Ri",
		"alertSent":             "Njoftimi u transmetua",
		"alertSentSuccess":      "Njoftimi juaj u dërgua te rolet e zgjedhura.",
		"alertValidationFailed": "Titulli, përmbajtja dhe të paktën një rol janë të detyrueshme.",
		"noAlertsMatching":      "Asnjë njoftim nuk përputhet me filtrat tuaj.",
		"priorityLow":           "I ulët",
		"priorityMedium":        "Mesatar",
		"priorityHigh":          "I lartë",
		"priorityCritical":      "Kritik",
		"userManagement":        "Menaxhimi i Përdoruesve",
		"addNewUser":            "Shto Përdorues të Ri",
		"userAdded":             "Përdoruesi u shtua",
		"userAddedSuccess":      "{{name}} u shtua.",
		"userDeleted":           "Përdoruesi u fshi",
		"userDeletedSuccess":    "Përdoruesi është hequr.",
		"userNameRequired":      "Emri i përdoruesit është i detyrueshëm.",
		"actionDenied":          "Veprimi u refuzua",
		"cannotDeleteSelf":      "Nuk mund të fshini llogarinë tuaj.",
		"accessDenied":          "Qasja u refuzua",
		"noPermission":          "Nuk keni leje për të parë këtë faqe.",
		"unauthorized":          "Ju lutemi hyni për të vazhduar.",
		"tooManyRequests":       "Shumë kërkesa. Ju lutemi ngadalësoni.",
		"notFoundTitle":         "Faqja nuk u gjet",
		"backToDashboard":       "Kthehu te paneli",
		"loggedOut":             "Jeni çkyçur.",
	},
}
