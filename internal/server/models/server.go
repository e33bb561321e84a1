package models

import (
	"fmt"
	"net"
	"strconv"

	"github.com/google/uuid"
)

// Server is a hosted game server instance running on a node.
type Server struct {
	ID      int64     `json:"id"`
	UUID    uuid.UUID `json:"uuid"`
	OwnerID int64     `json:"owner_id"`
	NodeID  int64     `json:"node_id"`
	Name    string    `json:"name"`
}

// IsOwnedBy reports whether userID owns the server.
func (s *Server) IsOwnedBy(userID int64) bool {
	return s != nil && s.OwnerID == userID
}

// Node is a machine running the daemon that manages servers.
//
// DaemonSecret authenticates the panel to the daemon and must never leave the panel.
type Node struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Scheme       string `json:"scheme"`
	FQDN         string `json:"fqdn"`
	DaemonListen int    `json:"daemon_listen"`
	DaemonSecret string `json:"-"`
	BehindProxy  bool   `json:"behind_proxy"`
}

// BaseURL is the daemon's API root. Nodes behind a TLS-terminating proxy are
// reached on the scheme's default port instead of DaemonListen.
func (n *Node) BaseURL() string {
	scheme := n.Scheme
	if scheme == "" {
		scheme = "https"
	}
	if n.BehindProxy || n.DaemonListen == 0 {
		return fmt.Sprintf("%s://%s", scheme, n.FQDN)
	}
	return fmt.Sprintf("%s://%s", scheme, net.JoinHostPort(n.FQDN, strconv.Itoa(n.DaemonListen)))
}
