// Package predict is the boundary to the pretrained core-loss models.
//
// A [Predictor] maps one cycle of flux density (tesla), the excitation
// frequency (Hz) and the core temperature (°C) to the volumetric loss density
// (W/m³) and the field-strength waveform H (A/m). The models themselves live
// outside this repository; [HTTPClient] talks to a model server and [Func]
// adapts any function, which is how the browser build and the tests plug in.
//
// [Models] lists the model families with the sample count each expects and
// [Materials] the core materials they were trained on. [Cache] keeps one
// opened predictor per (model, material) pair.
package predict
