// Command libgeoavg builds the averaging functions as a shared library with
// C linkage:
//
//	go build -buildmode=c-shared -o libgeoavg.so ./cmd/libgeoavg
//
// The generated header declares
//
//	void averages_arit(int n_long, int n_lat, double *lon, double *lat,
//	                   double *field, int *mask, double *r);
//	void averages_arit2(int n_long, int n_lat, double *lon, double *lat,
//	                    double *field, int *mask, double *r);
//	void averages_rmean(int n_long, int n_lat, double *lon, double *lat,
//	                    double *field, int *mask, double r, double *m);
//	void averages_smean(int n_long, int n_lat, double *lon, double *lat,
//	                    double *field, int *mask, double s, double *m);
//
// and the same four functions with a _b suffix taking a bool mask. Fields,
// masks and outputs hold n_long*n_lat values in latitude-major order,
// field[j*n_long+i]. A NULL mask marks every cell valid. Any error is
// reported by writing NaN to *r or to every element of m.
//
// Setting GEOAVG_LOG=debug logs each call and its errors to stderr.
package main

func main() {}
