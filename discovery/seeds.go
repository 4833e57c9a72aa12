package discovery

// Seed describes a bootstrap endpoint and the certificate/public-key pins
// recorded for it. Pin verification is advisory here: seed discovery runs
// over plain HTTP (port 80, matching the deployed network), so the pins
// serve as a documented trust anchor for a future HTTPS transport rather
// than an enforced check.
type Seed struct {
	Host       string
	PubkeySHA  string // base64 SHA-256 of the certificate's public key
	CertSHA256 string // colon-separated SHA-256 fingerprint of the certificate
}

// DefaultSeeds are the three well-known bootstrap hosts consulted in order.
var DefaultSeeds = []Seed{
	{
		Host:       "seed1.getsession.org",
		PubkeySHA:  "mlYTXvkmIEYcpswANTpnBwlz9Cswi0py/RQKkbdQOZQ=",
		CertSHA256: "36:EA:0B:25:35:37:98:85:51:EE:85:6E:4F:D2:0D:55:01:1E:9C:8B:27:EA:A2:F3:4B:8F:32:A0:BD:F0:4F:2D",
	},
	{
		Host:       "seed2.getsession.org",
		PubkeySHA:  "ZuUxe4wopBR83Yy5fePPNX0c00BnkQCu/49oapFpB0k=",
		CertSHA256: "C5:90:8D:D4:13:9A:CD:96:AE:DD:1E:45:57:65:97:65:08:09:C8:A5:EA:02:AF:55:6D:48:53:D4:53:96:E0:E7",
	},
	{
		Host:       "seed3.getsession.org",
		PubkeySHA:  "4xe+8k1NjxerVTjUsWlZJNKt3PA7Y31pUls2tHYippA=",
		CertSHA256: "8A:0A:F2:C7:12:34:2F:22:CE:00:E5:3C:16:01:41:0E:F8:D8:41:56:AE:E0:A9:80:9C:32:F6:F7:EF:BE:55:6E",
	},
}
