package main

import (
	"net"
	"net/http"

	"github.com/asergeyev/nradix"
	"github.com/juju/errors"
)

// allowedNetworksMiddleware rejects requests which come from outside of
// configured networks. Proxy headers are ignored, only a peer address is
// checked.
type allowedNetworksMiddleware struct {
	handler http.Handler
	v4      *nradix.Tree
	v6      *nradix.Tree
}

func (a *allowedNetworksMiddleware) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if a.allowed(req.RemoteAddr) {
		a.handler.ServeHTTP(w, req)

		return
	}

	w.WriteHeader(http.StatusForbidden)
}

func (a *allowedNetworksMiddleware) allowed(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	addr := net.ParseIP(host)
	if addr == nil {
		return false
	}

	tree, cidr := a.v6, addr.String()+"/128"
	if ipv4 := addr.To4(); ipv4 != nil {
		tree, cidr = a.v4, ipv4.String()+"/32"
	}

	value, err := tree.FindCIDR(cidr)

	return err == nil && value != nil
}

func newAllowedNetworksMiddleware(handler http.Handler, networks []string) (*allowedNetworksMiddleware, error) {
	mw := &allowedNetworksMiddleware{
		handler: handler,
		v4:      nradix.NewTree(0),
		v6:      nradix.NewTree(0),
	}

	for _, v := range networks {
		_, network, err := net.ParseCIDR(v)
		if err != nil {
			return nil, errors.Annotatef(err, "incorrect network %s", v)
		}

		tree := mw.v6
		if network.IP.To4() != nil {
			tree = mw.v4
		}

		if err := tree.AddCIDR(network.String(), true); err != nil && err != nradix.ErrNodeBusy {
			return nil, errors.Annotatef(err, "cannot add network %s", v)
		}
	}

	return mw, nil
}
