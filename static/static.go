// Package static embeds the files served under /static/.
//
// wasm_exec.js and client.wasm.gz are build outputs; run go generate in
// this directory before building the server so they are embedded.
package static

import "embed"

//go:generate sh -c "cp \"$(go env GOROOT)/misc/wasm/wasm_exec.js\" . 2>/dev/null || cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" ."
//go:generate sh -c "cd ../client && GOOS=js GOARCH=wasm go build -o ../static/client.wasm . && gzip -f ../static/client.wasm"

//go:embed *
var FS embed.FS
