//go:build android

package main

/*

#include <stdlib.h>
#include <jni.h>

static jstring jni_NewStringUTF(JNIEnv *env, const char *bytes) {
	return (*env)->NewStringUTF(env, bytes);
}

*/
import "C"
import (
	"unsafe"

	"github.com/goldberg/googletest/bridge"
)

//export Java_com_goldberg_googletest_MainActivity_stringFromJNI
func Java_com_goldberg_googletest_MainActivity_stringFromJNI(env *C.JNIEnv, obj C.jobject) C.jstring {
	return bridge.StringFromJNI(env, obj, newStringUTF)
}

func newStringUTF(env *C.JNIEnv, s string) C.jstring {
	str := C.CString(s)
	defer C.free(unsafe.Pointer(str))

	return C.jni_NewStringUTF(env, str)
}

func main() {}
