package force

import "github.com/cpmech/gosl/chk"

// ParamStore is the private parameter record every force contribution owns:
// four maps keyed by parameter name (global scalars, strings, integers,
// numeric arrays) plus optional per-face and per-vertex numeric overrides.
// Grounded on mreten.BrooksCorey's Init(fun.Prms)/GetPrms pattern,
// generalised to the four value kinds a force contract requires.
type ParamStore struct {
	Num map[string]float64
	Str map[string]string
	Int map[string]int
	Arr map[string][]float64

	// FaceParams/VertexParams hold per-element numeric overrides, keyed by
	// face/vertex id. A missing id simply means "use the global value".
	FaceParams   map[int]map[string]float64
	VertexParams map[int]map[string]float64
}

// NewParamStore returns an empty, ready-to-use ParamStore.
func NewParamStore() *ParamStore {
	return &ParamStore{
		Num:          make(map[string]float64),
		Str:          make(map[string]string),
		Int:          make(map[string]int),
		Arr:          make(map[string][]float64),
		FaceParams:   make(map[int]map[string]float64),
		VertexParams: make(map[int]map[string]float64),
	}
}

// SetGlobal merges the given maps into the store, overwriting any existing
// key. A nil map argument is treated as empty.
func (p *ParamStore) SetGlobal(num map[string]float64, str map[string]string, in map[string]int, arr map[string][]float64) {
	for k, v := range num {
		p.Num[k] = v
	}
	for k, v := range str {
		p.Str[k] = v
	}
	for k, v := range in {
		p.Int[k] = v
	}
	for k, v := range arr {
		p.Arr[k] = v
	}
}

// SetFacewise writes a per-face parameter record for every (fids[i],
// params[i]) pair, overwriting any prior record for that id. Fails if the
// two slices have different lengths. Ids are not validated against any
// mesh; an id that never matches a real face simply never gets looked up.
func (p *ParamStore) SetFacewise(op string, fids []int, params []map[string]float64) error {
	if len(fids) != len(params) {
		return chk.Err("%s: len(fids)=%d != len(params)=%d", op, len(fids), len(params))
	}
	for i, fid := range fids {
		p.FaceParams[fid] = params[i]
	}
	return nil
}

// SetVertexwise is the vertex-keyed symmetric counterpart of SetFacewise.
func (p *ParamStore) SetVertexwise(op string, vids []int, params []map[string]float64) error {
	if len(vids) != len(params) {
		return chk.Err("%s: len(vids)=%d != len(params)=%d", op, len(vids), len(params))
	}
	for i, vid := range vids {
		p.VertexParams[vid] = params[i]
	}
	return nil
}

// FaceScalar returns the per-face override for key on fid if one was set via
// SetFacewise, else the caller-supplied fallback global.
func (p *ParamStore) FaceScalar(fid int, key string, global float64) float64 {
	if fp, ok := p.FaceParams[fid]; ok {
		if v, ok := fp[key]; ok {
			return v
		}
	}
	return global
}

// VertexScalar is FaceScalar's per-vertex counterpart.
func (p *ParamStore) VertexScalar(vid int, key string, global float64) float64 {
	if vp, ok := p.VertexParams[vid]; ok {
		if v, ok := vp[key]; ok {
			return v
		}
	}
	return global
}
