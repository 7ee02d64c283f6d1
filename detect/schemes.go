package detect

import (
	"sort"
	"strings"
)

// Scheme tables used by the colon-disambiguation protocol. Each name is
// matched as a suffix of the buffered candidate in both its literal form
// ("name://") and its percent-encoded-colon form ("name%3a//"). Longer
// names are tried first so that e.g. "sftp://" wins over "ftp://".

// webSchemes is the small table used by default.
var webSchemes = []string{"http", "https", "ftp", "ftps"}

// ianaSchemes covers the IANA-registered schemes, used under
// ExtendedSchemeDetection.
var ianaSchemes = []string{
	"http", "https", "ftp", "ftps", "fax", "filesystem", "mailserver", "modem", "pack", "prospero",
	"snews", "videotex", "wais", "wpid", "z39.50", "aaa", "aaas", "about", "acap", "acct",
	"cap", "cid", "coap", "coap+tcp", "coap+ws", "coaps", "coaps+tcp", "coaps+ws", "crid",
	"data", "dav", "dict", "dns", "dtn", "example", "file", "geo", "go", "gopher", "h323",
	"iax", "icap", "im", "imap", "info", "ipn", "ipp", "ipps", "iris", "iris.beep", "iris.lwz",
	"iris.xpc", "iris.xpcs", "jabber", "ldap", "leaptofrogans", "mailto", "mid", "msrp",
	"msrps", "mtqp", "mupdate", "news", "nfs", "ni", "nih", "nntp", "opaquelocktoken", "pkcs11",
	"pop", "pres", "reload", "rtsp", "rtsps", "rtspu", "service", "session", "shttp", "sieve",
	"sip", "sips", "sms", "snmp", "soap.beep", "soap.beeps", "stun", "stuns", "tag", "tel",
	"telnet", "tftp", "thismessage", "tip", "tn3270", "turn", "turns", "tv", "urn", "vemmi",
	"vnc", "ws", "wss", "xcon", "xcon-userid", "xmlrpc.beep", "xmlrpc.beeps", "xmpp", "z39.50r",
	"z39.50s", "acd", "acr", "adiumxtra", "adt", "afp", "afs", "aim", "amss", "android",
	"appdata", "apt", "ar", "ark", "attachment", "aw", "barion", "beshare", "bitcoin", "bitcoincash",
	"blob", "bolo", "browserext", "cabal", "calculator", "callto", "cast", "casts", "chrome",
	"chrome-extension", "com-eventbrite-attendee", "content", "content-type", "cvs", "dab",
	"dat", "diaspora", "did", "dis", "dlna-playcontainer", "dlna-playsingle", "dntp", "doi",
	"dpp", "drm", "drop", "dtmi", "dvb", "dvx", "dweb", "ed2k", "elsi", "embedded", "ens",
	"ethereum", "facetime", "feed", "feedready", "fido", "finger", "first-run-pen-experience",
	"fish", "fm", "fuchsia-pkg", "gg", "git", "gizmoproject", "graph", "gtalk", "ham", "hcap",
	"hcp", "hxxp", "hxxps", "hydrazone", "hyper", "icon", "iotdisco", "ipfs", "ipns", "irc",
	"irc6", "ircs", "isostore", "itms", "jar", "jms", "keyparc", "lastfm", "lbry", "ldaps",
	"lorawan", "lvlt", "magnet", "maps", "market", "matrix", "message", "microsoft.windows.camera",
	"microsoft.windows.camera.multipicker", "microsoft.windows.camera.picker", "mms", "mongodb",
	"moz", "ms-access", "ms-appinstaller", "ms-browser-extension", "ms-calculator", "ms-drive-to",
	"ms-enrollment", "ms-excel", "ms-eyecontrolspeech", "ms-gamebarservices", "ms-gamingoverlay",
	"ms-getoffice", "ms-help", "ms-infopath", "ms-inputapp", "ms-lockscreencomponent-config",
	"ms-media-stream-id", "ms-meetnow", "ms-mixedrealitycapture", "ms-mobileplans", "ms-officeapp",
	"ms-people", "ms-project", "ms-powerpoint", "ms-publisher", "ms-restoretabcompanion",
	"ms-screenclip", "ms-screensketch", "ms-search", "ms-search-repair", "ms-secondary-screen-controller",
	"ms-secondary-screen-setup", "ms-settings", "ms-settings-airplanemode", "ms-settings-bluetooth",
	"ms-settings-camera", "ms-settings-cellular", "ms-settings-cloudstorage", "ms-settings-connectabledevices",
	"ms-settings-displays-topology", "ms-settings-emailandaccounts", "ms-settings-language",
	"ms-settings-location", "ms-settings-lock", "ms-settings-nfctransactions", "ms-settings-notifications",
	"ms-settings-power", "ms-settings-privacy", "ms-settings-proximity", "ms-settings-screenrotation",
	"ms-settings-wifi", "ms-settings-workplace", "ms-spd", "ms-stickers", "ms-sttoverlay",
	"ms-transit-to", "ms-useractivityset", "ms-virtualtouchpad", "ms-visio", "ms-walk-to",
	"ms-whiteboard", "ms-whiteboard-cmd", "ms-word", "msnim", "mss", "mt", "mumble", "mvn",
	"notes", "num", "ocf", "oid", "onenote", "onenote-cmd", "openpgp4fpr", "otpauth", "palm",
	"paparazzi", "payment", "payto", "platform", "proxy", "pwid", "psyc", "pttp", "qb", "query",
	"quic-transport", "redis", "rediss", "res", "resource", "rmi", "rsync", "rtmfp", "rtmp",
	"sarif", "secondlife", "secret-token", "sftp", "sgn", "shc", "simpleledger", "simplex",
	"skype", "smb", "smp", "smtp", "soldat", "spiffe", "spotify", "ssb", "ssh", "steam",
	"submit", "svn", "swh", "swid", "swidpath", "teamspeak", "teliaeid", "things", "tool",
	"udp", "unreal", "ut2004", "uuid-in-package", "v-event", "ventrilo", "ves", "view-source",
	"vscode", "vscode-insiders", "vsls", "wcr", "webcal", "wifi", "wtai", "wyciwyg", "xfire",
	"xri", "ymsgr",
}

// schemeForms expands each scheme name into its two matchable suffix forms,
// longest first.
func schemeForms(names []string) []string {
	forms := make([]string, 0, len(names)*2)
	for _, name := range names {
		forms = append(forms, name+"://", name+"%3a//")
	}
	sortFormsByLength(forms)
	return forms
}

func sortFormsByLength(forms []string) {
	sort.SliceStable(forms, func(i, j int) bool {
		return len(forms[i]) > len(forms[j])
	})
}

var (
	webSchemeForms  = schemeForms(webSchemes)
	ianaSchemeForms = schemeForms(ianaSchemes)
)

// findSchemeStart matches the case-folded candidate against the scheme
// table selected by the option set and returns the rune offset where the
// scheme begins, or -1 when no table entry is a suffix of the candidate.
func findSchemeStart(candidate string, opts Options) int {
	forms := webSchemeForms
	if opts.Has(ExtendedSchemeDetection) {
		forms = ianaSchemeForms
	}
	folded := strings.ToLower(candidate)
	for _, form := range forms {
		if strings.HasSuffix(folded, form) {
			// Scheme forms are ASCII, so the rune offset is the rune
			// count of the candidate minus the form length.
			return len([]rune(candidate)) - len(form)
		}
	}
	return -1
}
