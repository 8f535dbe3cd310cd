//go:build js && wasm

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"syscall/js"

	"github.com/cwbudde/magnet-engine/dsp/signal"
	"github.com/cwbudde/magnet-engine/internal/engine"
	"github.com/cwbudde/magnet-engine/predict"
	"github.com/cwbudde/magnet-engine/table"
)

var (
	mu     sync.Mutex
	eng    *engine.Engine
	params = engine.DefaultParams()
	last   *engine.Result
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	// init(predict) installs a JS predictor called as
	// predict(Float64Array bTesla, freqHz, tempC) and returning
	// {loss_density, h} or a Promise of it.
	api.Set("init", export(func(args []js.Value) any {
		var opts []engine.Option
		if len(args) > 0 && args[0].Type() == js.TypeFunction {
			opts = append(opts, engine.WithPredictor(jsPredictor(args[0])))
		}
		mu.Lock()
		eng = engine.New(opts...)
		last = nil
		mu.Unlock()
		return js.Null()
	}))

	api.Set("setParams", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		mu.Lock()
		defer mu.Unlock()
		patch, err := patchFrom(args[0])
		if err != nil {
			return err.Error()
		}
		next, err := params.Apply(patch)
		if err != nil {
			return err.Error()
		}
		params = next
		return js.Null()
	}))

	api.Set("upload", export(func(args []js.Value) any {
		if len(args) < 1 {
			return "upload needs CSV text"
		}
		row, err := table.ReadFirstRow(strings.NewReader(args[0].String()))
		if err != nil {
			return err.Error()
		}
		mu.Lock()
		params.Upload = row
		params.Shape = signal.ShapeCustom
		mu.Unlock()
		return js.Null()
	}))

	api.Set("render", export(func(args []js.Value) any {
		mu.Lock()
		e, p := eng, params
		mu.Unlock()

		return newPromise(func() (any, error) {
			if e == nil {
				return nil, errors.New("init has not been called")
			}
			res, err := e.Render(context.Background(), p)
			if err != nil {
				return nil, err
			}
			mu.Lock()
			last = &res
			mu.Unlock()
			return resultValue(res), nil
		})
	}))

	api.Set("csv", export(func(args []js.Value) any {
		mu.Lock()
		res := last
		mu.Unlock()
		if res == nil {
			return ""
		}
		t, err := res.Table()
		if err != nil {
			return ""
		}
		var buf bytes.Buffer
		if err := table.WriteCSV(&buf, t); err != nil {
			return ""
		}
		return buf.String()
	}))

	api.Set("csvName", table.DefaultCSVName)

	api.Set("models", export(func(args []js.Value) any {
		models := predict.Models()
		out := make([]any, len(models))
		for i, m := range models {
			out[i] = map[string]any{"name": m.Name, "samples": m.Resolution}
		}
		return out
	}))

	api.Set("materials", export(func(args []js.Value) any {
		mats := predict.Materials()
		out := make([]any, len(mats))
		for i, m := range mats {
			out[i] = m
		}
		return out
	}))

	js.Global().Set("MagnetEngine", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

// patchFrom reads the recognized fields of a JS object. Fields of the
// wrong type are ignored.
func patchFrom(v js.Value) (engine.Patch, error) {
	var patch engine.Patch
	if v.Type() != js.TypeObject {
		return patch, fmt.Errorf("setParams needs an object, got %s", v.Type())
	}
	str := func(key string) *string {
		if f := v.Get(key); f.Type() == js.TypeString {
			s := f.String()
			return &s
		}
		return nil
	}
	num := func(key string) *float64 {
		if f := v.Get(key); f.Type() == js.TypeNumber {
			x := f.Float()
			return &x
		}
		return nil
	}

	patch.Model = str("model")
	patch.Material = str("material")
	patch.Shape = str("shape")
	patch.Amplitude = num("amplitude")
	patch.Phase = num("phase")
	patch.Duty = num("duty")
	patch.Duty2 = num("duty2")
	patch.Frequency = num("frequency")
	patch.Temperature = num("temperature")
	return patch, nil
}

func float64Array(x []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(x))
	for i, v := range x {
		arr.SetIndex(i, v)
	}
	return arr
}

// floatsFrom copies an array-like of numbers. It reports false instead of
// panicking when v is not array-like or holds a non-number.
func floatsFrom(v js.Value) ([]float64, bool) {
	if v.Type() != js.TypeObject || v.Get("length").Type() != js.TypeNumber {
		return nil, false
	}
	n := v.Length()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		e := v.Index(i)
		if e.Type() != js.TypeNumber {
			return nil, false
		}
		out[i] = e.Float()
	}
	return out, true
}

func resultValue(res engine.Result) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("time", float64Array(res.Time))
	obj.Set("b", float64Array(res.B))
	obj.Set("h", float64Array(res.H))
	obj.Set("loopB", float64Array(res.LoopB))
	obj.Set("loopH", float64Array(res.LoopH))
	obj.Set("lossKnown", res.LossKnown)
	obj.Set("lossDensity", res.LossDensity)
	obj.Set("lossLabel", res.LossLabel())
	obj.Set("loopLoss", res.LoopLoss)
	obj.Set("bPeak", res.BStats.Peak)
	obj.Set("hPeak", res.HStats.Peak)
	obj.Set("thd", res.Spectrum.THD)
	obj.Set("harmonics", float64Array(res.Spectrum.Harmonics))
	obj.Set("frequencyGauge", res.Params.FrequencyGauge())
	obj.Set("temperatureGauge", res.Params.TemperatureGauge())
	return obj
}

// newPromise runs fn on a goroutine and settles a JS Promise with its
// outcome. fn may block on other promises.
func newPromise(fn func() (any, error)) js.Value {
	var handler js.Func
	handler = js.FuncOf(func(_ js.Value, args []js.Value) any {
		resolve, reject := args[0], args[1]
		go func() {
			defer handler.Release()
			defer func() {
				if r := recover(); r != nil {
					reject.Invoke(js.Global().Get("Error").New(fmt.Sprint(r)))
				}
			}()
			v, err := fn()
			if err != nil {
				reject.Invoke(js.Global().Get("Error").New(err.Error()))
				return
			}
			resolve.Invoke(v)
		}()
		return nil
	})
	return js.Global().Get("Promise").New(handler)
}

// await blocks until v settles when it is a thenable.
func await(v js.Value) (js.Value, error) {
	if v.Type() != js.TypeObject || v.Get("then").Type() != js.TypeFunction {
		return v, nil
	}

	type settled struct {
		v   js.Value
		err error
	}
	ch := make(chan settled, 1)
	onOK := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var r js.Value
		if len(args) > 0 {
			r = args[0]
		}
		ch <- settled{v: r}
		return nil
	})
	onErr := js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := "rejected"
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		ch <- settled{err: errors.New(msg)}
		return nil
	})
	defer onOK.Release()
	defer onErr.Release()

	v.Call("then", onOK, onErr)
	s := <-ch
	return s.v, s.err
}

func jsPredictor(fn js.Value) predict.Predictor {
	return predict.Func(func(_ context.Context, bTesla []float64, freqHz, tempC float64) (predict.Prediction, error) {
		out, err := await(fn.Invoke(float64Array(bTesla), freqHz, tempC))
		if err != nil {
			return predict.Prediction{}, fmt.Errorf("js predictor: %w", err)
		}
		if out.Type() != js.TypeObject {
			return predict.Prediction{}, fmt.Errorf("%w: js predictor returned %s", predict.ErrBadResponse, out.Type())
		}
		loss := out.Get("loss_density")
		if loss.Type() != js.TypeNumber {
			return predict.Prediction{}, fmt.Errorf("%w: loss_density is %s", predict.ErrBadResponse, loss.Type())
		}
		h, ok := floatsFrom(out.Get("h"))
		if !ok {
			return predict.Prediction{}, fmt.Errorf("%w: h is not an array of numbers", predict.ErrBadResponse)
		}
		return predict.Prediction{LossDensity: loss.Float(), H: h}, nil
	})
}
