// Package i18n provides the dashboard's localized string tables, indexed
// by (locale, key). The key set is validated for completeness across all
// locales at startup so a missing translation fails fast instead of
// silently falling back.
package i18n

import (
	"fmt"
	"sort"
)

// Lang is a supported interface language.
type Lang string

const (
	LangEnglish Lang = "en"
	LangHindi   Lang = "hi"
	LangKannada Lang = "kn"
)

// Normalize maps an arbitrary string to a supported language, defaulting
// to English.
func Normalize(s string) Lang {
	switch Lang(s) {
	case LangHindi:
		return LangHindi
	case LangKannada:
		return LangKannada
	default:
		return LangEnglish
	}
}

// Message keys. Format keys take printf arguments noted alongside.
const (
	KeyAppTitle       = "appTitle"
	KeyAppSubtitle    = "appSubtitle"
	KeySelectState    = "selectState"
	KeySelectDistrict = "selectDistrict"
	KeyDetectLocation = "detectLocation"
	KeyLoading        = "loading"
	KeyNoData         = "noData"
	KeyError          = "error"
	KeyOffline        = "offline"

	KeyHouseholds        = "households"
	KeyAverageDays       = "averageDays"
	KeyWages             = "wages"
	KeyOngoingProjects   = "ongoingProjects"
	KeyCompletedProjects = "completedProjects"
	KeyTotalExpenditure  = "totalExpenditure"
	KeyWageRate          = "wageRate"

	KeyComparison = "comparison"
	KeyCurrent    = "current"
	KeyPrevious   = "previous"
	KeyChange     = "change"
	KeyIncreased  = "increased"
	KeyDecreased  = "decreased"
	KeyStable     = "stable"

	KeyAboveAverage = "aboveAverage"
	KeyModerate     = "moderate"
	KeyBelowAverage = "belowAverage"

	KeyLastUpdated = "lastUpdated"
	KeyMonth       = "month"
	KeyYear        = "year"

	// Detection outcomes.
	KeyErrUnsupported         = "errUnsupported"
	KeyErrPermissionDenied    = "errPermissionDenied"
	KeyErrPositionUnavailable = "errPositionUnavailable"
	KeyErrTimeout             = "errTimeout"
	KeyErrGeocode             = "errGeocode"
	KeyErrConnectivity        = "errConnectivity"
	// %[1]s detected state, %[2]s supported state.
	KeyErrRegionUnsupported = "errRegionUnsupported"
	// %[1]s supported state.
	KeyErrRegionNotConfigured = "errRegionNotConfigured"
	// %[1]s district name, %[2]s supported state.
	KeyErrDistrictNotFound = "errDistrictNotFound"
)

// Bundle is a validated (locale, key) lookup table.
type Bundle struct {
	tables map[Lang]map[string]string
}

// Default returns the built-in bundle with all three locales.
func Default() *Bundle {
	return &Bundle{tables: map[Lang]map[string]string{
		LangEnglish: english,
		LangHindi:   hindi,
		LangKannada: kannada,
	}}
}

// Validate checks that every locale defines exactly the union of all keys.
func (b *Bundle) Validate() error {
	union := map[string]bool{}
	for _, table := range b.tables {
		for k := range table {
			union[k] = true
		}
	}
	var missing []string
	for lang, table := range b.tables {
		for k := range union {
			if _, ok := table[k]; !ok {
				missing = append(missing, fmt.Sprintf("%s/%s", lang, k))
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("incomplete translation tables: missing %v", missing)
	}
	return nil
}

// T looks up key in lang, falling back to English, then to the key itself.
func (b *Bundle) T(lang Lang, key string) string {
	if table, ok := b.tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := b.tables[LangEnglish][key]; ok {
		return s
	}
	return key
}

// Tf is T followed by Sprintf with the given arguments.
func (b *Bundle) Tf(lang Lang, key string, args ...any) string {
	return fmt.Sprintf(b.T(lang, key), args...)
}

var english = map[string]string{
	KeyAppTitle:       "Our Voice, Our Rights",
	KeyAppSubtitle:    "MGNREGA Performance Dashboard",
	KeySelectState:    "Select State",
	KeySelectDistrict: "Select District",
	KeyDetectLocation: "Detect My Location",
	KeyLoading:        "Loading...",
	KeyNoData:         "No data available",
	KeyError:          "Something went wrong",
	KeyOffline:        "You are offline. Showing cached data.",

	KeyHouseholds:        "Households Employed",
	KeyAverageDays:       "Average Days Worked",
	KeyWages:             "Wages Disbursed",
	KeyOngoingProjects:   "Ongoing Projects",
	KeyCompletedProjects: "Completed Works",
	KeyTotalExpenditure:  "Total Expenditure",
	KeyWageRate:          "Average Wage Rate",

	KeyComparison: "Monthly Comparison",
	KeyCurrent:    "Current Month",
	KeyPrevious:   "Previous Month",
	KeyChange:     "Change",
	KeyIncreased:  "Increased",
	KeyDecreased:  "Decreased",
	KeyStable:     "Stable",

	KeyAboveAverage: "Excellent Performance",
	KeyModerate:     "Good Performance",
	KeyBelowAverage: "Needs Improvement",

	KeyLastUpdated: "Last Updated",
	KeyMonth:       "Month",
	KeyYear:        "Financial Year",

	KeyErrUnsupported:         "Geolocation not supported by your browser",
	KeyErrPermissionDenied:    "Location permission denied. Please enable location access.",
	KeyErrPositionUnavailable: "Location unavailable. Please check your device settings.",
	KeyErrTimeout:             "Location request timed out. Please try again.",
	KeyErrGeocode:             "Could not determine your district. Please select manually.",
	KeyErrConnectivity:        "Unable to connect to server. Please try again later.",
	KeyErrRegionUnsupported:   "You are in %[1]s. This dashboard currently shows data only for %[2]s districts. Please select a %[2]s district manually to explore the demo.",
	KeyErrRegionNotConfigured: "%[1]s state not found in database",
	KeyErrDistrictNotFound:    "District \"%[1]s\" not found in %[2]s. Please select manually.",
}

var hindi = map[string]string{
	KeyAppTitle:       "हमारी आवाज़, हमारे अधिकार",
	KeyAppSubtitle:    "मनरेगा प्रदर्शन डैशबोर्ड",
	KeySelectState:    "राज्य चुनें",
	KeySelectDistrict: "जिला चुनें",
	KeyDetectLocation: "मेरा स्थान खोजें",
	KeyLoading:        "लोड हो रहा है...",
	KeyNoData:         "कोई डेटा उपलब्ध नहीं है",
	KeyError:          "कुछ गलत हो गया",
	KeyOffline:        "आप ऑफ़लाइन हैं। संग्रहीत डेटा दिखाया जा रहा है।",

	KeyHouseholds:        "रोजगार प्राप्त परिवार",
	KeyAverageDays:       "औसत कार्य दिवस",
	KeyWages:             "वितरित मजदूरी",
	KeyOngoingProjects:   "चल रहे कार्य",
	KeyCompletedProjects: "पूर्ण कार्य",
	KeyTotalExpenditure:  "कुल व्यय",
	KeyWageRate:          "औसत मजदूरी दर",

	KeyComparison: "मासिक तुलना",
	KeyCurrent:    "वर्तमान माह",
	KeyPrevious:   "पिछला माह",
	KeyChange:     "परिवर्तन",
	KeyIncreased:  "बढ़ा",
	KeyDecreased:  "घटा",
	KeyStable:     "स्थिर",

	KeyAboveAverage: "उत्कृष्ट प्रदर्शन",
	KeyModerate:     "अच्छा प्रदर्शन",
	KeyBelowAverage: "सुधार की आवश्यकता",

	KeyLastUpdated: "अंतिम अपडेट",
	KeyMonth:       "महीना",
	KeyYear:        "वित्तीय वर्ष",

	KeyErrUnsupported:         "आपका ब्राउज़र जियोलोकेशन का समर्थन नहीं करता",
	KeyErrPermissionDenied:    "स्थान अनुमति अस्वीकृत। कृपया स्थान पहुंच सक्षम करें।",
	KeyErrPositionUnavailable: "स्थान अनुपलब्ध। कृपया अपनी डिवाइस सेटिंग्स जांचें।",
	KeyErrTimeout:             "स्थान अनुरोध समय समाप्त। कृपया पुनः प्रयास करें।",
	KeyErrGeocode:             "आपके जिले का निर्धारण नहीं किया जा सका। कृपया मैन्युअल रूप से चुनें।",
	KeyErrConnectivity:        "सर्वर से कनेक्ट नहीं हो सका। कृपया बाद में पुनः प्रयास करें।",
	KeyErrRegionUnsupported:   "आप %[1]s में हैं। यह डैशबोर्ड वर्तमान में केवल %[2]s जिलों के लिए डेटा दिखाता है। कृपया %[2]s जिले को मैन्युअल रूप से चुनें।",
	KeyErrRegionNotConfigured: "डेटाबेस में %[1]s राज्य नहीं मिला",
	KeyErrDistrictNotFound:    "%[2]s में \"%[1]s\" जिला नहीं मिला। कृपया मैन्युअल रूप से चुनें।",
}

var kannada = map[string]string{
	KeyAppTitle:       "ನಮ್ಮ ಧ್ವನಿ, ನಮ್ಮ ಹಕ್ಕುಗಳು",
	KeyAppSubtitle:    "ಮನರೇಗಾ ಕಾರ್ಯಕ್ಷಮತಾ ಡ್ಯಾಶ್‌ಬೋರ್ಡ್",
	KeySelectState:    "ರಾಜ್ಯವನ್ನು ಆಯ್ಕೆಮಾಡಿ",
	KeySelectDistrict: "ಜಿಲ್ಲೆಯನ್ನು ಆಯ್ಕೆಮಾಡಿ",
	KeyDetectLocation: "ನನ್ನ ಸ್ಥಳವನ್ನು ಪತ್ತೆಹಚ್ಚಿ",
	KeyLoading:        "ಲೋಡ್ ಆಗುತ್ತಿದೆ...",
	KeyNoData:         "ಮಾಹಿತಿ ಲಭ್ಯವಿಲ್ಲ",
	KeyError:          "ಏನೋ ತಪ್ಪಾಗಿದೆ",
	KeyOffline:        "ನೀವು ಆಫ್‌ಲೈನ್‌ನಲ್ಲಿದ್ದೀರಿ. ಸಂಗ್ರಹಿತ ಮಾಹಿತಿಯನ್ನು ತೋರಿಸಲಾಗುತ್ತಿದೆ.",

	KeyHouseholds:        "ಉದ್ಯೋಗ ಪಡೆದ ಮನೆಗಳು",
	KeyAverageDays:       "ಸರಾಸರಿ ಕೆಲಸದ ದಿನಗಳು",
	KeyWages:             "ಹಂಚಿದ ವೇತನ",
	KeyOngoingProjects:   "ನಡೆಯುತ್ತಿರುವ ಯೋಜನೆಗಳು",
	KeyCompletedProjects: "ಪೂರ್ಣಗೊಂಡ ಕೆಲಸಗಳು",
	KeyTotalExpenditure:  "ಒಟ್ಟು ವೆಚ್ಚ",
	KeyWageRate:          "ಸರಾಸರಿ ವೇತನ ದರ",

	KeyComparison: "ಮಾಸಿಕ ಹೋಲಿಕೆ",
	KeyCurrent:    "ಪ್ರಸ್ತುತ ತಿಂಗಳು",
	KeyPrevious:   "ಹಿಂದಿನ ತಿಂಗಳು",
	KeyChange:     "ಬದಲಾವಣೆ",
	KeyIncreased:  "ಹೆಚ್ಚಾಗಿದೆ",
	KeyDecreased:  "ಕಡಿಮೆಯಾಗಿದೆ",
	KeyStable:     "ಸ್ಥಿರವಾಗಿದೆ",

	KeyAboveAverage: "ಅತ್ಯುತ್ತಮ ಕಾರ್ಯಕ್ಷಮತೆ",
	KeyModerate:     "ಚೆನ್ನಾದ ಕಾರ್ಯಕ್ಷಮತೆ",
	KeyBelowAverage: "ಸುಧಾರಣೆ ಅಗತ್ಯವಿದೆ",

	KeyLastUpdated: "ಕೊನೆಯ ನವೀಕರಣ",
	KeyMonth:       "ತಿಂಗಳು",
	KeyYear:        "ಆರ್ಥಿಕ ವರ್ಷ",

	KeyErrUnsupported:         "ನಿಮ್ಮ ಬ್ರೌಸರ್ ಜಿಯೋಲೊಕೇಶನ್ ಬೆಂಬಲಿಸುವುದಿಲ್ಲ",
	KeyErrPermissionDenied:    "ಸ್ಥಳ ಅನುಮತಿ ನಿರಾಕರಿಸಲಾಗಿದೆ. ದಯವಿಟ್ಟು ಸ್ಥಳ ಪ್ರವೇಶವನ್ನು ಸಕ್ರಿಯಗೊಳಿಸಿ.",
	KeyErrPositionUnavailable: "ಸ್ಥಳ ಲಭ್ಯವಿಲ್ಲ. ದಯವಿಟ್ಟು ನಿಮ್ಮ ಸಾಧನ ಸೆಟ್ಟಿಂಗ್‌ಗಳನ್ನು ಪರಿಶೀಲಿಸಿ.",
	KeyErrTimeout:             "ಸ್ಥಳ ವಿನಂತಿ ಅವಧಿ ಮುಗಿದಿದೆ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
	KeyErrGeocode:             "ನಿಮ್ಮ ಜಿಲ್ಲೆಯನ್ನು ನಿರ್ಧರಿಸಲು ಸಾಧ್ಯವಾಗಲಿಲ್ಲ. ದಯವಿಟ್ಟು ಹಸ್ತಚಾಲಿತವಾಗಿ ಆಯ್ಕೆಮಾಡಿ.",
	KeyErrConnectivity:        "ಸರ್ವರ್‌ಗೆ ಸಂಪರ್ಕಿಸಲು ಸಾಧ್ಯವಾಗಲಿಲ್ಲ. ದಯವಿಟ್ಟು ನಂತರ ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
	KeyErrRegionUnsupported:   "ನೀವು %[1]s ನಲ್ಲಿದ್ದೀರಿ. ಈ ಡ್ಯಾಶ್‌ಬೋರ್ಡ್ ಪ್ರಸ್ತುತ %[2]s ಜಿಲ್ಲೆಗಳಿಗೆ ಮಾತ್ರ ಡೇಟಾವನ್ನು ತೋರಿಸುತ್ತದೆ. ದಯವಿಟ್ಟು %[2]s ಜಿಲ್ಲೆಯನ್ನು ಹಸ್ತಚಾಲಿತವಾಗಿ ಆಯ್ಕೆಮಾಡಿ.",
	KeyErrRegionNotConfigured: "%[1]s ರಾಜ್ಯ ಡೇಟಾಬೇಸ್‌ನಲ್ಲಿ ಕಂಡುಬಂದಿಲ್ಲ",
	KeyErrDistrictNotFound:    "\"%[1]s\" ಜಿಲ್ಲೆ %[2]s ದಲ್ಲಿ ಕಂಡುಬಂದಿಲ್ಲ. ದಯವಿಟ್ಟು ಹಸ್ತಚಾಲಿತವಾಗಿ ಆಯ್ಕೆಮಾಡಿ.",
}
