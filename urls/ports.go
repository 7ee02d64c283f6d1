package urls

// schemeDefaultPorts maps a scheme to its well-known default port. A zero
// value means the scheme is registered but carries no default port. The
// table is consulted twice: to resolve Port() when a token carried no
// explicit port, and to suppress rendering a port that equals the default.
var schemeDefaultPorts = map[string]int{
	"http": 80,
	"https": 443,
	"ftp": 21,
	"fax": 1620,
	"filesystem": 0,
	"mailserver": 0,
	"modem": 0,
	"pack": 0,
	"prospero": 1525,
	"snews": 0,
	"videotex": 0,
	"wais": 210,
	"wpid": 0,
	"z39.50": 0,
	"aaa": 0,
	"aaas": 0,
	"about": 0,
	"acap": 674,
	"acct": 0,
	"cap": 0,
	"cid": 0,
	"coap": 0,
	"coap+tcp": 0,
	"coap+ws": 0,
	"coaps": 0,
	"coaps+tcp": 0,
	"coaps+ws": 0,
	"crid": 0,
	"data": 0,
	"dav": 0,
	"dict": 2628,
	"dns": 53,
	"dtn": 0,
	"example": 0,
	"file": 0,
	"geo": 0,
	"go": 0,
	"gopher": 70,
	"h323": 0,
	"iax": 0,
	"icap": 0,
	"im": 0,
	"imap": 143,
	"info": 0,
	"ipn": 0,
	"ipp": 631,
	"ipps": 631,
	"iris": 0,
	"iris.beep": 0,
	"iris.lwz": 0,
	"iris.xpc": 0,
	"iris.xpcs": 0,
	"jabber": 5222,
	"ldap": 389,
	"leaptofrogans": 0,
	"mailto": 0,
	"mid": 0,
	"msrp": 2855,
	"msrps": 0,
	"mtqp": 1038,
	"mupdate": 0,
	"news": 0,
	"nfs": 111,
	"ni": 0,
	"nih": 0,
	"nntp": 119,
	"opaquelocktoken": 0,
	"pkcs11": 0,
	"pop": 110,
	"pres": 0,
	"reload": 0,
	"rtsp": 554,
	"rtsps": 322,
	"rtspu": 5005,
	"service": 0,
	"session": 0,
	"shttp": 80,
	"sieve": 0,
	"sip": 0,
	"sips": 0,
	"sms": 0,
	"snmp": 161,
	"soap.beep": 0,
	"soap.beeps": 0,
	"stun": 3478,
	"stuns": 5349,
	"tag": 0,
	"tel": 0,
	"telnet": 23,
	"tftp": 69,
	"thismessage": 0,
	"tip": 0,
	"tn3270": 23,
	"turn": 3478,
	"turns": 5349,
	"tv": 0,
	"urn": 0,
	"vemmi": 575,
	"vnc": 5900,
	"ws": 80,
	"wss": 443,
	"xcon": 0,
	"xcon-userid": 0,
	"xmlrpc.beep": 602,
	"xmlrpc.beeps": 602,
	"xmpp": 5222,
	"z39.50r": 210,
	"z39.50s": 210,
	"acd": 0,
	"acr": 0,
	"adiumxtra": 0,
	"adt": 0,
	"afp": 548,
	"afs": 0,
	"aim": 5190,
	"amss": 0,
	"android": 0,
	"appdata": 0,
	"apt": 80,
	"ar": 1984,
	"ark": 0,
	"attachment": 0,
	"aw": 7777,
	"barion": 0,
	"beshare": 0,
	"bitcoin": 8332,
	"bitcoincash": 8332,
	"blob": 0,
	"bolo": 0,
	"browserext": 0,
	"cabal": 13331,
	"calculator": 0,
	"callto": 0,
	"cast": 0,
	"casts": 0,
	"chrome": 0,
	"chrome-extension": 0,
	"com-eventbrite-attendee": 0,
	"content": 0,
	"content-type": 0,
	"cvs": 2401,
	"dab": 0,
	"dat": 0,
	"diaspora": 0,
	"did": 0,
	"dis": 393,
	"dlna-playcontainer": 0,
	"dlna-playsingle": 0,
	"dntp": 0,
	"doi": 0,
	"dpp": 8908,
	"drm": 0,
	"drop": 0,
	"dtmi": 0,
	"dvb": 3937,
	"dvx": 0,
	"dweb": 0,
	"ed2k": 0,
	"elsi": 0,
	"embedded": 0,
	"ens": 0,
	"ethereum": 30303,
	"facetime": 3478,
	"feed": 0,
	"feedready": 0,
	"fido": 0,
	"finger": 79,
	"first-run-pen-experience": 0,
	"fish": 0,
	"fm": 0,
	"fuchsia-pkg": 0,
	"gg": 0,
	"git": 9418,
	"gizmoproject": 64064,
	"graph": 0,
	"gtalk": 0,
	"ham": 0,
	"hcap": 0,
	"hcp": 0,
	"hxxp": 80,
	"hxxps": 443,
	"hydrazone": 0,
	"hyper": 0,
	"icon": 0,
	"iotdisco": 0,
	"ipfs": 10001,
	"ipns": 0,
	"irc": 194,
	"irc6": 194,
	"ircs": 994,
	"isostore": 0,
	"itms": 0,
	"jar": 0,
	"jms": 5673,
	"keyparc": 0,
	"lastfm": 0,
	"lbry": 0,
	"ldaps": 636,
	"lorawan": 0,
	"lvlt": 0,
	"magnet": 0,
	"maps": 0,
	"market": 0,
	"matrix": 8448,
	"message": 0,
	"microsoft.windows.camera": 0,
	"microsoft.windows.camera.multipicker": 0,
	"microsoft.windows.camera.picker": 0,
	"mms": 1755,
	"mongodb": 27017,
	"moz": 0,
	"ms-access": 0,
	"ms-appinstaller": 0,
	"ms-browser-extension": 0,
	"ms-calculator": 0,
	"ms-drive-to": 0,
	"ms-enrollment": 0,
	"ms-excel": 0,
	"ms-eyecontrolspeech": 0,
	"ms-gamebarservices": 0,
	"ms-gamingoverlay": 0,
	"ms-getoffice": 0,
	"ms-help": 0,
	"ms-infopath": 0,
	"ms-inputapp": 0,
	"ms-lockscreencomponent-config": 0,
	"ms-media-stream-id": 0,
	"ms-meetnow": 0,
	"ms-mixedrealitycapture": 0,
	"ms-mobileplans": 0,
	"ms-officeapp": 0,
	"ms-people": 0,
	"ms-project": 0,
	"ms-powerpoint": 0,
	"ms-publisher": 0,
	"ms-restoretabcompanion": 0,
	"ms-screenclip": 0,
	"ms-screensketch": 0,
	"ms-search": 0,
	"ms-search-repair": 0,
	"ms-secondary-screen-controller": 0,
	"ms-secondary-screen-setup": 0,
	"ms-settings": 0,
	"ms-settings-airplanemode": 0,
	"ms-settings-bluetooth": 0,
	"ms-settings-camera": 0,
	"ms-settings-cellular": 0,
	"ms-settings-cloudstorage": 0,
	"ms-settings-connectabledevices": 0,
	"ms-settings-displays-topology": 0,
	"ms-settings-emailandaccounts": 0,
	"ms-settings-language": 0,
	"ms-settings-location": 0,
	"ms-settings-lock": 0,
	"ms-settings-nfctransactions": 0,
	"ms-settings-notifications": 0,
	"ms-settings-power": 0,
	"ms-settings-privacy": 0,
	"ms-settings-proximity": 0,
	"ms-settings-screenrotation": 0,
	"ms-settings-wifi": 0,
	"ms-settings-workplace": 0,
	"ms-spd": 0,
	"ms-stickers": 0,
	"ms-sttoverlay": 0,
	"ms-transit-to": 0,
	"ms-useractivityset": 0,
	"ms-virtualtouchpad": 0,
	"ms-visio": 0,
	"ms-walk-to": 0,
	"ms-whiteboard": 0,
	"ms-whiteboard-cmd": 0,
	"ms-word": 0,
	"msnim": 0,
	"mss": 0,
	"mt": 0,
	"mumble": 64738,
	"mvn": 0,
	"notes": 0,
	"num": 0,
	"ocf": 0,
	"oid": 0,
	"onenote": 0,
	"onenote-cmd": 0,
	"openpgp4fpr": 11371,
	"otpauth": 0,
	"palm": 0,
	"paparazzi": 0,
	"payment": 0,
	"payto": 0,
	"platform": 0,
	"proxy": 0,
	"pwid": 0,
	"psyc": 0,
	"pttp": 0,
	"qb": 0,
	"query": 0,
	"quic-transport": 0,
	"redis": 6379,
	"rediss": 6379,
	"res": 0,
	"resource": 0,
	"rmi": 0,
	"rsync": 873,
	"rtmfp": 1935,
	"rtmp": 1935,
	"sarif": 0,
	"secondlife": 0,
	"secret-token": 0,
	"sftp": 22,
	"sgn": 0,
	"shc": 0,
	"simpleledger": 0,
	"simplex": 0,
	"skype": 5521,
	"smb": 445,
	"smp": 0,
	"smtp": 25,
	"soldat": 23073,
	"spiffe": 0,
	"spotify": 57621,
	"ssb": 0,
	"ssh": 22,
	"steam": 4380,
	"submit": 0,
	"svn": 3690,
	"swh": 0,
	"swid": 0,
	"swidpath": 0,
	"teamspeak": 10011,
	"teliaeid": 0,
	"things": 0,
	"tool": 0,
	"udp": 0,
	"unreal": 0,
	"ut2004": 0,
	"uuid-in-package": 0,
	"v-event": 0,
	"ventrilo": 3784,
	"ves": 0,
	"view-source": 0,
	"vscode": 0,
	"vscode-insiders": 0,
	"vsls": 0,
	"wcr": 0,
	"webcal": 0,
	"wifi": 0,
	"wtai": 0,
	"wyciwyg": 0,
	"xfire": 0,
	"xri": 0,
	"ymsgr": 0,
}

// DefaultPort returns the well-known port for scheme, or -1 when the
// scheme is unknown or has no default.
func DefaultPort(scheme string) int {
	port, ok := schemeDefaultPorts[scheme]
	if !ok || port == 0 {
		return -1
	}
	return port
}
