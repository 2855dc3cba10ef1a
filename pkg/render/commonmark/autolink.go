package commonmark

import (
	"bytes"
	"strings"

	"github.com/yaklabco/gomdfmt/pkg/mdast"
)

var mailtoPrefix = []byte("mailto:")

// knownSchemes are the URI schemes accepted in the autolink form.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownSchemes = makeSchemeSet(
	"coap", "doi", "javascript", "aaa", "aaas", "about", "acap", "cap", "cid",
	"crid", "data", "dav", "dict", "dns", "file", "ftp", "geo", "go", "gopher",
	"h323", "http", "https", "iax", "icap", "im", "imap", "info", "ipp", "iris",
	"iris.beep", "iris.xpc", "iris.xpcs", "iris.lwz", "ldap", "mailto", "mid",
	"msrp", "msrps", "mtqp", "mupdate", "news", "nfs", "ni", "nih", "nntp",
	"opaquelocktoken", "pop", "pres", "rtsp", "service", "session", "shttp",
	"sieve", "sip", "sips", "sms", "snmp", "soap.beep", "soap.beeps", "tag",
	"tel", "telnet", "tftp", "thismessage", "tn3270", "tip", "tv", "urn",
	"vemmi", "ws", "wss", "xcon", "xcon-userid", "xmlrpc.beep", "xmlrpc.beeps",
	"xmpp", "z39.50r", "z39.50s", "adiumxtra", "afp", "afs", "aim", "apt",
	"attachment", "aw", "beshare", "bitcoin", "bolo", "callto", "chrome",
	"chrome-extension", "com-eventbrite-attendee", "content", "cvs",
	"dlna-playsingle", "dlna-playcontainer", "dtn", "dvb", "ed2k", "facetime",
	"feed", "finger", "fish", "gg", "git", "gizmoproject", "gtalk", "hcp",
	"icon", "ipn", "irc", "irc6", "ircs", "itms", "jar", "jms", "keyparc",
	"lastfm", "ldaps", "magnet", "maps", "market", "message", "mms", "ms-help",
	"msnim", "mumble", "mvn", "notes", "oid", "palm", "paparazzi", "platform",
	"proxy", "psyc", "query", "res", "resource", "rmi", "rsync", "rtmp",
	"secondlife", "sftp", "sgn", "skype", "smb", "soldat", "spotify", "ssh",
	"steam", "svn", "teamspeak", "things", "udp", "unreal", "ut2004",
	"ventrilo", "view-source", "webcal", "wtai", "wyciwyg", "xfire", "xri",
	"ymsgr",
)

func makeSchemeSet(schemes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(schemes))
	for _, scheme := range schemes {
		set[scheme] = struct{}{}
	}
	return set
}

// hasKnownScheme reports whether url starts with a known scheme followed by
// a colon. Scheme matching ignores case.
func hasKnownScheme(url []byte) bool {
	colon := bytes.IndexByte(url, ':')
	if colon <= 0 {
		return false
	}
	_, ok := knownSchemes[strings.ToLower(string(url[:colon]))]
	return ok
}

// isAutolink reports whether a link can be written as <url>: the URL has a
// known scheme, there is no title, and the link text is exactly the URL (or
// the address of a mailto: URL). The URL must also survive unescaped
// between angle brackets.
func isAutolink(node *mdast.Node, link *mdast.LinkAttrs) bool {
	if node.Kind != mdast.NodeLink {
		return false
	}

	url := link.Destination
	if len(url) == 0 || !hasKnownScheme(url) || len(link.Title) > 0 {
		return false
	}
	if bytes.ContainsAny(url, "<> \t\n\r\v\f") {
		return false
	}

	text, ok := plainText(node)
	if !ok {
		return false
	}
	if bytes.Equal(text, url) {
		return true
	}
	return bytes.HasPrefix(url, mailtoPrefix) && bytes.Equal(text, url[len(mailtoPrefix):])
}

// plainText concatenates the literals of node's children. It reports false
// when a child is anything other than text.
func plainText(node *mdast.Node) ([]byte, bool) {
	if node.FirstChild != nil && node.FirstChild == node.LastChild {
		if node.FirstChild.Kind != mdast.NodeText {
			return nil, false
		}
		return node.FirstChild.Literal(), true
	}

	var text []byte
	for child := node.FirstChild; child != nil; child = child.Next {
		if child.Kind != mdast.NodeText {
			return nil, false
		}
		text = append(text, child.Literal()...)
	}
	return text, true
}
